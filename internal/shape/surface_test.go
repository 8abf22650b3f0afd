package shape

import (
	"fmt"
	"image/color"
)

// recorder is a Surface that logs every call.
type recorder struct {
	ops []string
}

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) SetColor(c color.Color) {
	cr, cg, cb, _ := c.RGBA()
	r.add("color %d,%d,%d", cr>>8, cg>>8, cb>>8)
}
func (r *recorder) SetLineWidth(w float64)           { r.add("width %g", w) }
func (r *recorder) MoveTo(x, y float64)              { r.add("move %g,%g", x, y) }
func (r *recorder) LineTo(x, y float64)              { r.add("line %g,%g", x, y) }
func (r *recorder) ClosePath()                       { r.add("close") }
func (r *recorder) DrawRectangle(x, y, w, h float64) { r.add("rect %g,%g %gx%g", x, y, w, h) }
func (r *recorder) DrawCircle(x, y, rad float64)     { r.add("circle %g,%g r%g", x, y, rad) }
func (r *recorder) Stroke() error {
	r.add("stroke")
	return nil
}
