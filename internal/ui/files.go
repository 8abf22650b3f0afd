package ui

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/gogpu/gg"

	"MyLocalPaint/internal/export"
	"MyLocalPaint/internal/store"
)

var documentFilter = storage.NewExtensionFileFilter([]string{".json"})

func shapeCount(verb string, n int) string {
	if n == 1 {
		return verb + " 1 shape"
	}
	return fmt.Sprintf("%s %d shapes", verb, n)
}

func (e *Editor) fail(what string, err error) {
	e.log.Error(what, "err", err)
	e.SetStatus(what + " failed")
	dialog.ShowError(err, e.win)
}

func (e *Editor) showSave() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			e.fail("Save", err)
			return
		}
		if w == nil {
			return
		}
		path := w.URI().Path()
		if err := w.Close(); err != nil {
			e.log.Warn("closing save target", "path", path, "err", err)
		}
		e.Save(path)
	}, e.win)
	d.SetFilter(documentFilter)
	d.SetFileName("drawing.json")
	d.Show()
}

// Save writes the drawing to path.
func (e *Editor) Save(path string) {
	if err := store.Save(path, e.board.Snapshot()); err != nil {
		e.fail("Save", err)
		return
	}
	e.log.Info("document saved", "path", path, "shapes", e.board.Len())
	e.SetStatus(shapeCount("Saved", e.board.Len()))
}

func (e *Editor) showOpen() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			e.fail("Load", err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		doc, err := store.Decode(r)
		if err != nil {
			// the current drawing stays as it was
			e.fail("Load", fmt.Errorf("load %s: %w", r.URI().Name(), err))
			return
		}
		e.log.Info("document loaded", "path", r.URI().Path(), "shapes", len(doc.Shapes))
		e.Open(doc)
	}, e.win)
	d.SetFilter(documentFilter)
	d.Show()
}

func (e *Editor) showExportPNG() {
	e.showExport("drawing.png", export.PNGFile)
}

func (e *Editor) showExportPDF() {
	e.showExport("drawing.pdf", export.PDFFile)
}

func (e *Editor) showExport(name string, write func(string, *gg.Context) (string, error)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			e.fail("Export", err)
			return
		}
		if w == nil {
			return
		}
		path := w.URI().Path()
		if err := w.Close(); err != nil {
			e.log.Warn("closing export target", "path", path, "err", err)
		}
		e.Export(path, write)
	}, e.win)
	d.SetFileName(name)
	d.Show()
}

// Export renders the canvas and writes it with write. When write settles on a
// different file name the empty file the dialog created is removed.
func (e *Editor) Export(path string, write func(string, *gg.Context) (string, error)) {
	dc := e.board.Raster()
	defer dc.Close()

	final, err := write(path, dc)
	if err != nil {
		e.fail("Export", err)
		return
	}
	if final != path {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			e.log.Warn("removing placeholder", "path", path, "err", err)
		}
	}
	e.log.Info("canvas exported", "path", final)
	e.SetStatus("Exported " + final)
}
