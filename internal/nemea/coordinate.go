// Package nemea encodes track points into Nemea.GPS sentences.
//
// Nemea.GPS is a fixed NMEA 0183 variant: only the time and position fields
// of $GPGGA change between records, everything else is constant.
package nemea

import (
	"github.com/woozymasta/gpx2nemea/internal/geo"
)

const (
	latMinutesWidth = 5 // MM.mm
	lonDegreesWidth = 3 // DDD
)

// EncodeLatitude converts decimal degrees to DDMM.mm.
//
// Degree digits are copied as-is; minutes are zero-padded to MM.mm.
func EncodeLatitude(lat string) (string, error) {
	deg, minutes, err := splitMinutes("latitude", lat)
	if err != nil {
		return "", err
	}

	return deg + geo.ZeroFill(minutes, latMinutesWidth), nil
}

// EncodeLongitude converts decimal degrees to DDDMM.mm.
//
// Degrees are zero-padded to three digits; minutes are not padded, so
// 5.4 minutes render as "5.40".
func EncodeLongitude(lon string) (string, error) {
	deg, minutes, err := splitMinutes("longitude", lon)
	if err != nil {
		return "", err
	}

	return geo.ZeroFill(deg, lonDegreesWidth) + minutes, nil
}

func splitMinutes(field, value string) (deg, minutes string, err error) {
	deg, frac, err := geo.SplitDecimal(value)
	if err != nil {
		return "", "", &FormatError{Field: field, Value: value, Reason: err}
	}

	m, err := geo.FractionToMinutes(frac)
	if err != nil {
		return "", "", &FormatError{Field: field, Value: value, Reason: err}
	}

	return deg, geo.RoundMinutes(m), nil
}
