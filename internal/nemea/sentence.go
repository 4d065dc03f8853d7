package nemea

import "fmt"

const (
	// Preamble opens every block.
	Preamble = "res=2"

	// VTG is the constant velocity sentence.
	VTG = "$GPVTG,000.0,T,,,000.6,N,001.1,K"

	// ggaFormat fills time, latitude and longitude; fix quality, satellites,
	// HDOP, altitude, geoid separation and DGPS fields are constants.
	ggaFormat = "$GPGGA,%s,%s,N,%s,E,2,6,001.0,034.3,M,-032.3,M,001,0400"
)

// FormatGGA builds the fix sentence for one point.
func FormatGGA(t, lat, lon string) string {
	return fmt.Sprintf(ggaFormat, t, lat, lon)
}

// FormatRecord builds the block for one point:
//
//	res=2
//
//	$GPGGA,...
//	$GPVTG,...
//	<blank>
func FormatRecord(t, lat, lon string) string {
	return Preamble + "\n\n" + FormatGGA(t, lat, lon) + "\n" + VTG + "\n\n"
}

// ClosingBlock terminates the stream after the last record.
func ClosingBlock() string {
	return Preamble + "\n" + VTG + "\n"
}
