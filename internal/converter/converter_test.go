package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrianmo/go-nmea"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/gpx2nemea/internal/config"
	"github.com/woozymasta/gpx2nemea/internal/gpx"
	"github.com/woozymasta/gpx2nemea/internal/nemea"
)

func testConfig(t *testing.T, input string) config.Config {
	t.Helper()

	cfg, err := config.New(filepath.Join("testdata", input), filepath.Join(t.TempDir(), "out.nmea"))
	require.NoError(t, err)
	return cfg
}

func TestConvertFile(t *testing.T) {
	cfg := testConfig(t, "track.gpx")
	require.NoError(t, ConvertFile(cfg))

	got, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	want, err := os.ReadFile("testdata/track.nmea")
	require.NoError(t, err)

	require.Equal(t, string(want), string(got))
	require.NotContains(t, string(got), "\r")
}

func TestConvertFileTruncatesOutput(t *testing.T) {
	cfg := testConfig(t, "empty.gpx")
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte(strings.Repeat("x", 4096)), 0o644))

	require.NoError(t, ConvertFile(cfg))

	got, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, nemea.ClosingBlock(), string(got))
}

func TestConvertFileNoOutputOnFailure(t *testing.T) {
	for _, ca := range []struct {
		input string
		check func(t *testing.T, err error)
	}{
		{"no_time.gpx", func(t *testing.T, err error) {
			var se *gpx.StructureError
			require.ErrorAs(t, err, &se)
			require.Equal(t, 2, se.Point)
		}},
		{"bad_lat.gpx", func(t *testing.T, err error) {
			var fe *nemea.FormatError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, "latitude", fe.Field)
			require.Contains(t, err.Error(), "trkpt #1")
		}},
		{"bad_time.gpx", func(t *testing.T, err error) {
			var fe *nemea.FormatError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, "time", fe.Field)
		}},
		{"missing.gpx", func(t *testing.T, err error) {
			var ioe *IOError
			require.ErrorAs(t, err, &ioe)
			require.Equal(t, "read", ioe.Op)
			require.ErrorIs(t, err, os.ErrNotExist)
		}},
	} {
		t.Run(ca.input, func(t *testing.T) {
			cfg := testConfig(t, ca.input)

			err := ConvertFile(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), cfg.InputPath)
			ca.check(t, err)

			_, statErr := os.Stat(cfg.OutputPath)
			require.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestConvertFileUnwritableOutput(t *testing.T) {
	cfg, err := config.New("testdata/track.gpx", filepath.Join(t.TempDir(), "missing", "out.nmea"))
	require.NoError(t, err)

	err = ConvertFile(cfg)

	var ioe *IOError
	require.ErrorAs(t, err, &ioe)
	require.Equal(t, "create", ioe.Op)
	require.Equal(t, cfg.OutputPath, ioe.Path)
}

func TestConvertEmpty(t *testing.T) {
	out, err := Convert(nil)
	require.NoError(t, err)
	require.Equal(t, "res=2\n$GPVTG,000.0,T,,,000.6,N,001.1,K\n", out)
}

func TestConvertRecordPerPoint(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		points := make([]gpx.TrackPoint, n)
		for i := range points {
			points[i] = gpx.TrackPoint{
				Latitude:  fmt.Sprintf("60.%d", i+1),
				Longitude: "24.780305307399999",
				Timestamp: fmt.Sprintf("2023-05-16T15:41:%02dZ", i),
			}
		}

		out, err := Convert(points)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(out, nemea.ClosingBlock()))

		lines := strings.Split(out, "\n")
		var ggas []string
		for i, line := range lines {
			if !strings.HasPrefix(line, "$GPGGA,") {
				continue
			}
			require.Equal(t, "", lines[i-1])
			require.Equal(t, nemea.Preamble, lines[i-2])
			ggas = append(ggas, line)
		}
		require.Len(t, ggas, n)
		require.Equal(t, n+1, strings.Count(out, nemea.Preamble))

		for i, line := range ggas {
			s, err := nmea.Parse(line + "*" + nmea.Checksum(strings.TrimPrefix(line, "$")))
			require.NoError(t, err)
			gga := s.(nmea.GGA)
			require.Equal(t, i, gga.Time.Second, "document order")
		}
	}
}

func TestConvertStopsAtFirstError(t *testing.T) {
	_, err := Convert([]gpx.TrackPoint{
		{Latitude: "60.1", Longitude: "24.7", Timestamp: "2023-05-16T15:41:11Z"},
		{Latitude: "60.1", Longitude: "24", Timestamp: "2023-05-16T15:41:11Z"},
	})

	var fe *nemea.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "longitude", fe.Field)
	require.EqualError(t, err, `trkpt #2: invalid longitude "24": expected decimal degrees like 60.1573`)
}

func TestNormalizeLineEndings(t *testing.T) {
	for _, ca := range []struct {
		in  string
		out string
	}{
		{"", ""},
		{"a\nb\n", "a\nb\n"},
		{"a\r\nb\r\n", "a\nb\n"},
		{"a\r\r\nb", "a\nb"},
		{"a\rb\r", "a\rb\r"},
	} {
		once := NormalizeLineEndings(ca.in)
		require.Equal(t, ca.out, once, "%q", ca.in)
		require.Equal(t, once, NormalizeLineEndings(once), "%q", ca.in)
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nmea")
	require.NoError(t, WriteOutput(path, "first run, longer\n"))
	require.NoError(t, WriteOutput(path, "second\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second\n", string(got))
}
