package shape

import "MyLocalPaint/internal/geom"

// RectangleShape is the axis-aligned box spanned by two opposite corners.
type RectangleShape struct {
	base
}

func (r *RectangleShape) Kind() Kind { return Rectangle }

func (r *RectangleShape) Render(s Surface) error {
	lo, hi := geom.Bounds(r.start, r.end)
	r.pen(s, OutlineWidth)
	s.DrawRectangle(float64(lo.X), float64(lo.Y), float64(hi.X-lo.X), float64(hi.Y-lo.Y))
	return s.Stroke()
}

// Contains is boundary inclusive.
func (r *RectangleShape) Contains(p geom.Point) bool {
	lo, hi := geom.Bounds(r.start, r.end)
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}
