// Package logger configures the global zerolog logger from CLI options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is embedded into command options as a flags group.
type Logger struct {
	Level  string `long:"log-level"  env:"LOG_LEVEL"  description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format string `long:"log-format" env:"LOG_FORMAT" description:"Log format" choice:"console" choice:"json" default:"console"`
}

// Setup installs the global logger writing to w. Console output is colored
// only when w is a terminal.
func (l Logger) Setup(w io.Writer) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if l.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
