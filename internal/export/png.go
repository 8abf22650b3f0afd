// Package export writes the rendered canvas out as a PNG image or as a
// one-page PDF sheet carrying the same image.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
)

var ErrExport = errors.New("export failed")

// PNG streams the canvas as PNG.
func PNG(w io.Writer, dc *gg.Context) error {
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// PNGFile writes the canvas to path, adding ".png" when the name lacks it. It
// returns the path actually written.
func PNGFile(path string, dc *gg.Context) (string, error) {
	path = WithExt(path, ".png")
	if err := dc.SavePNG(path); err != nil {
		return path, fmt.Errorf("%w: %s: %v", ErrExport, path, err)
	}
	return path, nil
}

// WithExt appends ext unless path already ends with it, ignoring case.
func WithExt(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return path + ext
}
