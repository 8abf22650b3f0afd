// Package shape implements the closed set of drawable shapes: rectangle, line,
// triangle, circle and free-hand trace. Every shape can render itself onto a
// Surface and answer whether a point hits it.
package shape

import (
	"errors"
	"fmt"
	"image/color"

	"MyLocalPaint/internal/geom"
)

const (
	// LineTolerance is the hit distance for lines (strict).
	LineTolerance = 5.0
	// FreeHandTolerance is the hit distance for free-hand traces (inclusive).
	FreeHandTolerance = 5.0

	// OutlineWidth is the stroke width of the geometric shapes.
	OutlineWidth = 1.0
	// DefaultStrokeWidth is the pen width of a free-hand trace.
	DefaultStrokeWidth = 1.0
	// EraserStrokeWidth is the width of an eraser trace.
	EraserStrokeWidth = 8.0
)

var (
	ErrUnknownKind = errors.New("shape: unknown kind")
	ErrEmptyTrace  = errors.New("shape: free-hand trace needs at least one point")
)

// Kind identifies a shape variant.
type Kind int

const (
	Rectangle Kind = iota
	Line
	Triangle
	Circle
	FreeHand
)

var kindNames = [...]string{
	Rectangle: "rectangle",
	Line:      "line",
	Triangle:  "triangle",
	Circle:    "circle",
	FreeHand:  "freehand",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Surface is what shapes draw on. *gg.Context satisfies it.
type Surface interface {
	SetColor(c color.Color)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	Stroke() error
}

// Shape is implemented only by the variants in this package.
type Shape interface {
	Kind() Kind
	Start() geom.Point
	End() geom.Point
	Color() color.RGBA

	// Render strokes the shape's outline in its color. It never mutates
	// the shape.
	Render(s Surface) error

	// Contains reports whether p hits the shape.
	Contains(p geom.Point) bool

	sealed()
}

// New builds the shape of the given kind spanning start and end. For FreeHand
// the result is a one-point trace at start with the default width.
func New(kind Kind, start, end geom.Point, c color.Color) (Shape, error) {
	col := opaque(c)
	b := base{start: start, end: end, color: col}

	switch kind {
	case Rectangle:
		return &RectangleShape{base: b}, nil
	case Line:
		return &LineShape{base: b}, nil
	case Triangle:
		return &TriangleShape{base: b}, nil
	case Circle:
		return &CircleShape{base: b}, nil
	case FreeHand:
		return NewFreeHand(start, col, DefaultStrokeWidth), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// base carries the fields every variant shares.
type base struct {
	start geom.Point
	end   geom.Point
	color color.RGBA
}

func (b *base) Start() geom.Point { return b.start }
func (b *base) End() geom.Point   { return b.end }
func (b *base) Color() color.RGBA { return b.color }
func (b *base) sealed()           {}

func (b *base) pen(s Surface, width float64) {
	s.SetColor(b.color)
	s.SetLineWidth(width)
}

// opaque drops alpha; shape colors are plain RGB.
func opaque(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

func fpt(p geom.Point) (float64, float64) {
	return float64(p.X), float64(p.Y)
}
