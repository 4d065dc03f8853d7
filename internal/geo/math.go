// Package geo handles the degrees-minutes arithmetic used by sentence encoders.
package geo

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDegree is the number of arc minutes in one degree.
const MinutesPerDegree = 60.0

// ErrNotDecimal is returned when a coordinate is not a signed decimal with
// digits on both sides of a single '.'.
var ErrNotDecimal = errors.New("expected decimal degrees like 60.1573")

var decimalRe = regexp.MustCompile(`^[+-]?[0-9]+\.[0-9]+$`)

// SplitDecimal splits a textual decimal degrees value on its '.' into the
// integer degree part (sign kept) and the fractional digits.
func SplitDecimal(value string) (degrees, fraction string, err error) {
	if !decimalRe.MatchString(value) {
		return "", "", ErrNotDecimal
	}

	degrees, fraction, _ = strings.Cut(value, ".")
	return degrees, fraction, nil
}

// FractionToMinutes converts the fractional digits of a degree value
// (the part after '.') to arc minutes.
//
// The digits are re-read as "0.<digits>" so the result matches a direct
// float parse of that string, not an exact decimal product.
func FractionToMinutes(fraction string) (float64, error) {
	f, err := strconv.ParseFloat("0."+fraction, 64)
	if err != nil {
		return 0, err
	}

	return f * MinutesPerDegree, nil
}

// RoundMinutes renders minutes with exactly two decimals.
//
// Rounding is applied to the exact binary value of m; only exact ties are
// resolved to even (0.125 -> "0.12", 0.375 -> "0.38", 2.675 -> "2.67").
func RoundMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', 2, 64)
}

// ZeroFill left-pads s with zeros to width, keeping a leading sign in front
// of the padding ("-5" -> "-05" for width 3).
func ZeroFill(s string, width int) string {
	if len(s) >= width {
		return s
	}

	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}

	return sign + strings.Repeat("0", width-len(s)-len(sign)) + s
}
