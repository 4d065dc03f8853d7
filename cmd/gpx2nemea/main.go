package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/gpx2nemea/internal/config"
	"github.com/woozymasta/gpx2nemea/internal/converter"
	"github.com/woozymasta/gpx2nemea/internal/gpx"
	"github.com/woozymasta/gpx2nemea/internal/logger"
	"github.com/woozymasta/gpx2nemea/internal/nemea"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input  string `long:"input"  description:"Input file in GPX xml-format"    required:"true"`
	Output string `long:"output" description:"Output file in Nemea.GPS format" required:"true"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run converts per args, logging to logOut, and returns the exit code.
func run(args []string, logOut io.Writer) int {
	var opts Options
	// No HelpFlag: --help is rejected like any unknown option.
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		fmt.Fprintf(logOut, "Error: %v\n", err)
		return exitUsage
	}

	opts.Logger.Setup(logOut)

	cfg, err := config.New(opts.Input, opts.Output)
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return exitUsage
	}

	log.Info().
		Str("input", cfg.InputPath).
		Str("output", cfg.OutputPath).
		Msg("Starting conversion")

	if err := converter.ConvertFile(cfg); err != nil {
		log.Error().
			Err(err).
			Str("kind", errorKind(err)).
			Msg("Conversion failed")
		return exitFailed
	}

	return exitOK
}

// errorKind classifies err for the diagnostic.
func errorKind(err error) string {
	var (
		fe  *nemea.FormatError
		se  *gpx.StructureError
		ioe *converter.IOError
	)

	switch {
	case errors.As(err, &fe):
		return "format"
	case errors.As(err, &se):
		return "structure"
	case errors.As(err, &ioe):
		return "io"
	default:
		return "unknown"
	}
}
