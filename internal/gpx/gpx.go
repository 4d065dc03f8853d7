// Package gpx reads track points from GPX 1.1 documents.
package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Namespace is the GPX 1.1 schema namespace. Elements in other namespaces
// are ignored.
const Namespace = "http://www.topografix.com/GPX/1/1"

// TrackPoint is one trkpt. Fields keep the document's text verbatim so the
// encoders can split on the literal decimal point.
type TrackPoint struct {
	Latitude  string
	Longitude string
	Timestamp string
}

// StructureError reports a malformed document or a trkpt missing a
// required attribute or child.
type StructureError struct {
	Point   int // 1-based trkpt ordinal, 0 for document-level errors
	Element string
	Reason  string
	Err     error
}

// Error implements error.
func (e *StructureError) Error() string {
	msg := e.Reason
	if e.Element != "" {
		msg = fmt.Sprintf("%s: %s", e.Element, msg)
	}
	if e.Point > 0 {
		msg = fmt.Sprintf("trkpt #%d: %s", e.Point, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying decoder error, if any.
func (e *StructureError) Unwrap() error {
	return e.Err
}

var (
	errNoRoot    = errors.New("no root element")
	errJunkAfter = errors.New("junk after document element")
	errTextOuter = errors.New("text outside document element")
)

// rawPoint collects one trkpt while its subtree is scanned.
type rawPoint struct {
	lat, lon *string
	time     *strings.Builder
}

// open is one entry of the element stack.
type open struct {
	point  *rawPoint // set when the element is a trkpt
	timeOf *rawPoint // set when the element is the time child of a trkpt
}

// ReadTrackPoints returns every trkpt of the document at any depth,
// including trkpt nested in another trkpt, ordered by start tag.
//
// The whole document is checked for well-formedness before any point is
// validated, so a syntax error wins over a missing attribute. Only the
// first direct time child of a trkpt is read.
func ReadTrackPoints(r io.Reader) ([]TrackPoint, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		raw        []*rawPoint
		stack      []open
		seenRoot   bool
		rootClosed bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, malformed(errJunkAfter)
			}
			seenRoot = true

			var e open
			switch {
			case t.Name.Space == Namespace && t.Name.Local == "trkpt":
				e.point = newRawPoint(t.Attr)
				raw = append(raw, e.point)

			case t.Name.Space == Namespace && t.Name.Local == "time" && len(stack) > 0:
				if parent := stack[len(stack)-1].point; parent != nil && parent.time == nil {
					parent.time = &strings.Builder{}
					e.timeOf = parent
				}
			}
			stack = append(stack, e)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) == "" {
					continue
				}
				if rootClosed {
					return nil, malformed(errJunkAfter)
				}
				return nil, malformed(errTextOuter)
			}
			if top := stack[len(stack)-1]; top.timeOf != nil {
				top.timeOf.time.Write(t)
			}
		}
	}

	if !seenRoot {
		return nil, malformed(errNoRoot)
	}

	points := make([]TrackPoint, 0, len(raw))
	for i, p := range raw {
		tp, err := p.point(i + 1)
		if err != nil {
			return nil, err
		}
		points = append(points, tp)
	}

	return points, nil
}

func malformed(err error) error {
	return &StructureError{Reason: "malformed XML", Err: err}
}

func newRawPoint(attrs []xml.Attr) *rawPoint {
	p := &rawPoint{}
	for _, a := range attrs {
		if a.Name.Space != "" {
			continue
		}
		switch a.Name.Local {
		case "lat":
			p.lat = &a.Value
		case "lon":
			p.lon = &a.Value
		}
	}
	return p
}

func (p *rawPoint) point(idx int) (TrackPoint, error) {
	switch {
	case p.lat == nil:
		return TrackPoint{}, &StructureError{Point: idx, Element: "trkpt", Reason: "missing lat attribute"}
	case p.lon == nil:
		return TrackPoint{}, &StructureError{Point: idx, Element: "trkpt", Reason: "missing lon attribute"}
	case p.time == nil:
		return TrackPoint{}, &StructureError{Point: idx, Element: "time", Reason: "missing child element"}
	}

	return TrackPoint{
		Latitude:  *p.lat,
		Longitude: *p.lon,
		Timestamp: p.time.String(),
	}, nil
}
