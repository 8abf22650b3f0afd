package shape

import "MyLocalPaint/internal/geom"

// TriangleShape is an isosceles triangle. Its base runs from start.X to end.X
// at end.Y and its apex sits at the middle of the base, at start.Y.
type TriangleShape struct {
	base
}

func (t *TriangleShape) Kind() Kind { return Triangle }

// Vertices returns left base corner, apex, right base corner.
func (t *TriangleShape) Vertices() [3]geom.Point {
	return [3]geom.Point{
		{X: t.start.X, Y: t.end.Y},
		{X: (t.start.X + t.end.X) / 2, Y: t.start.Y},
		{X: t.end.X, Y: t.end.Y},
	}
}

func (t *TriangleShape) Render(s Surface) error {
	v := t.Vertices()
	t.pen(s, OutlineWidth)
	s.MoveTo(fpt(v[0]))
	s.LineTo(fpt(v[1]))
	s.LineTo(fpt(v[2]))
	s.ClosePath()
	return s.Stroke()
}

func (t *TriangleShape) Contains(p geom.Point) bool {
	v := t.Vertices()
	return geom.PointInPolygon(p, v[:])
}
