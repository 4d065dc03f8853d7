// Package converter turns GPX track points into a Nemea.GPS stream.
package converter

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/woozymasta/gpx2nemea/internal/config"
	"github.com/woozymasta/gpx2nemea/internal/gpx"
	"github.com/woozymasta/gpx2nemea/internal/nemea"

	"github.com/rs/zerolog/log"
)

var crlfRe = regexp.MustCompile(`\r+\n`)

// ConvertFile reads cfg.InputPath, converts every track point and writes the
// stream to cfg.OutputPath. Nothing is written if reading or encoding fails.
func ConvertFile(cfg config.Config) error {
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return &IOError{Op: "read", Path: cfg.InputPath, Err: err}
	}

	points, err := gpx.ReadTrackPoints(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.InputPath, err)
	}

	log.Info().
		Str("input", cfg.InputPath).
		Int("points", len(points)).
		Msg("Track points loaded")

	payload, err := Convert(points)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.InputPath, err)
	}

	if err := WriteOutput(cfg.OutputPath, payload); err != nil {
		return err
	}

	log.Info().
		Str("output", cfg.OutputPath).
		Int("records", len(points)).
		Int("bytes", len(payload)).
		Msg("Data has been converted")

	return nil
}

// Convert encodes points in order, appends the closing block and normalizes
// line endings.
func Convert(points []gpx.TrackPoint) (string, error) {
	var sb strings.Builder

	for i, p := range points {
		rec, err := encodePoint(p)
		if err != nil {
			return "", fmt.Errorf("trkpt #%d: %w", i+1, err)
		}
		sb.WriteString(rec)
	}

	sb.WriteString(nemea.ClosingBlock())

	return NormalizeLineEndings(sb.String()), nil
}

func encodePoint(p gpx.TrackPoint) (string, error) {
	lat, err := nemea.EncodeLatitude(p.Latitude)
	if err != nil {
		return "", err
	}

	lon, err := nemea.EncodeLongitude(p.Longitude)
	if err != nil {
		return "", err
	}

	t, err := nemea.EncodeTime(p.Timestamp)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("lat", p.Latitude).
		Str("lon", p.Longitude).
		Str("time", p.Timestamp).
		Str("enc_lat", lat).
		Str("enc_lon", lon).
		Str("enc_time", t).
		Msg("Converted track point")

	return nemea.FormatRecord(t, lat, lon), nil
}

// NormalizeLineEndings rewrites CRLF to LF. Runs of CR before LF collapse
// too, so the result has no CRLF left and a second pass changes nothing.
func NormalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r\n") {
		return s
	}
	return crlfRe.ReplaceAllString(s, "\n")
}

// WriteOutput creates or truncates path and writes payload to it.
func WriteOutput(path, payload string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
			if err == nil {
				err = &IOError{Op: "close", Path: path, Err: closeErr}
			}
		}
	}()

	if _, err := f.WriteString(payload); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	return nil
}
