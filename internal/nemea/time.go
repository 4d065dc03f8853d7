package nemea

import (
	"errors"
	"regexp"
	"time"
)

// TimestampLayout is the only accepted track point time shape.
const TimestampLayout = "2006-01-02T15:04:05Z"

var errTimestampShape = errors.New("expected YYYY-MM-DDTHH:MM:SSZ")

// time.Parse silently accepts fractional seconds, so the shape is checked first.
var timestampRe = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}Z$`)

// EncodeTime converts a UTC timestamp to HHMMSS.
func EncodeTime(ts string) (string, error) {
	if !timestampRe.MatchString(ts) {
		return "", &FormatError{Field: "time", Value: ts, Reason: errTimestampShape}
	}

	t, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		return "", &FormatError{Field: "time", Value: ts, Reason: err}
	}

	return t.UTC().Format("150405"), nil
}
