package shape

import "MyLocalPaint/internal/geom"

// CircleShape is centered on start; end lies on the circumference.
type CircleShape struct {
	base
}

func (c *CircleShape) Kind() Kind { return Circle }

// Radius is the distance from the center to the radius-defining point.
func (c *CircleShape) Radius() float64 {
	return geom.Distance(c.start, c.end)
}

func (c *CircleShape) Render(s Surface) error {
	c.pen(s, OutlineWidth)
	x, y := fpt(c.start)
	s.DrawCircle(x, y, c.Radius())
	return s.Stroke()
}

// Contains is boundary inclusive. Squared integer distances keep the
// comparison exact.
func (c *CircleShape) Contains(p geom.Point) bool {
	return geom.DistanceSq(c.start, p) <= geom.DistanceSq(c.start, c.end)
}
