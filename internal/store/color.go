package store

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// FormatColor renders c as "#rrggbb". Alpha is not stored.
func FormatColor(c color.Color) string {
	cf, _ := colorful.MakeColor(opaque(c))
	return cf.Hex()
}

// ParseColor accepts any CSS color: names, #rgb, #rrggbb, rgb(), hsl(). The
// result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func opaque(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}
