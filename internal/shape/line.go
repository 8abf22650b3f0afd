package shape

import "MyLocalPaint/internal/geom"

// LineShape is a straight segment between its two endpoints.
type LineShape struct {
	base
}

func (l *LineShape) Kind() Kind { return Line }

func (l *LineShape) Render(s Surface) error {
	l.pen(s, OutlineWidth)
	s.MoveTo(fpt(l.start))
	s.LineTo(fpt(l.end))
	return s.Stroke()
}

// Contains reports whether p is strictly closer than LineTolerance to the
// segment.
func (l *LineShape) Contains(p geom.Point) bool {
	return geom.PointToSegmentDistance(p, l.start, l.end) < LineTolerance
}
