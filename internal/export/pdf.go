package export

import (
	"bytes"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/jung-kurt/gofpdf"
)

const sheetImage = "canvas"

// PDFFile writes a single page the size of the canvas, one point per pixel,
// with the canvas image covering it. ".pdf" is appended when missing.
func PDFFile(path string, dc *gg.Context) (string, error) {
	path = WithExt(path, ".pdf")

	var img bytes.Buffer
	if err := dc.EncodePNG(&img); err != nil {
		return path, fmt.Errorf("%w: %s: %v", ErrExport, path, err)
	}

	w, h := float64(dc.Width()), float64(dc.Height())
	p := gofpdf.New("P", "pt", "A4", "")
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(sheetImage, opts, &img)
	p.ImageOptions(sheetImage, 0, 0, w, h, false, opts, 0, "")

	if err := p.OutputFileAndClose(path); err != nil {
		return path, fmt.Errorf("%w: %s: %v", ErrExport, path, err)
	}
	return path, nil
}
