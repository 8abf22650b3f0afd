package shape

import (
	"image/color"

	"MyLocalPaint/internal/geom"
)

// FreeHandShape is a polyline grown point by point during a drag. The eraser
// is a white FreeHandShape with EraserStrokeWidth.
type FreeHandShape struct {
	base
	points []geom.Point
	width  float64
}

// NewFreeHand starts a trace at start. A non-positive width falls back to
// DefaultStrokeWidth.
func NewFreeHand(start geom.Point, c color.Color, width float64) *FreeHandShape {
	if width <= 0 {
		width = DefaultStrokeWidth
	}
	return &FreeHandShape{
		base:   base{start: start, end: start, color: opaque(c)},
		points: []geom.Point{start},
		width:  width,
	}
}

// NewFreeHandFromPoints rebuilds a finished trace, e.g. from a saved document.
func NewFreeHandFromPoints(points []geom.Point, c color.Color, width float64) (*FreeHandShape, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrace
	}
	f := NewFreeHand(points[0], c, width)
	for _, p := range points[1:] {
		f.Append(p)
	}
	return f, nil
}

func (f *FreeHandShape) Kind() Kind { return FreeHand }

// Width is the stroke width the trace was created with.
func (f *FreeHandShape) Width() float64 { return f.width }

// Len returns the number of points in the trace.
func (f *FreeHandShape) Len() int { return len(f.points) }

// Points returns a copy of the trace.
func (f *FreeHandShape) Points() []geom.Point {
	pts := make([]geom.Point, len(f.points))
	copy(pts, f.points)
	return pts
}

// Append adds p to the end of the trace and makes it the trailing end point.
func (f *FreeHandShape) Append(p geom.Point) {
	f.points = append(f.points, p)
	f.end = p
}

// Render connects consecutive points; a trace with fewer than two points
// draws nothing.
func (f *FreeHandShape) Render(s Surface) error {
	if len(f.points) < 2 {
		return nil
	}

	f.pen(s, f.width)
	s.MoveTo(fpt(f.points[0]))
	for _, p := range f.points[1:] {
		s.LineTo(fpt(p))
	}
	return s.Stroke()
}

// Contains reports whether p is within FreeHandTolerance of any segment of
// the trace. A single-point trace has no segment and never hits.
func (f *FreeHandShape) Contains(p geom.Point) bool {
	for i := 1; i < len(f.points); i++ {
		if geom.PointToSegmentDistance(p, f.points[i-1], f.points[i]) <= FreeHandTolerance {
			return true
		}
	}
	return false
}
