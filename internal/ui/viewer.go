package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"MyLocalPaint/internal/board"
	"MyLocalPaint/internal/store"
)

// ViewerWindow shows the latest drawing received from a shared canvas. It
// cannot edit.
type ViewerWindow struct {
	win    fyne.Window
	board  *board.Board
	image  *canvas.Image
	status *widget.Label
}

func NewViewerWindow(a fyne.App, logger *slog.Logger) *ViewerWindow {
	v := &ViewerWindow{
		win:    a.NewWindow(title + " (viewing)"),
		board:  board.New(1, 1, logger),
		status: widget.NewLabel("Connecting..."),
	}
	v.image = canvas.NewImageFromImage(v.board.Image())
	v.image.FillMode = canvas.ImageFillContain
	v.image.SetMinSize(fyne.NewSize(300, 300))
	v.win.SetContent(container.NewBorder(nil, v.status, nil, nil, v.image))
	v.win.Resize(fyne.NewSize(800, 600))
	return v
}

// Window returns the viewer window.
func (v *ViewerWindow) Window() fyne.Window { return v.win }

// Show displays doc. Call it on the UI goroutine.
func (v *ViewerWindow) Show(doc store.Document) {
	v.board.Restore(doc)
	v.image.Image = v.board.Image()
	v.image.Refresh()
	v.status.SetText(shapeCount("Showing", len(doc.Shapes)))
}

// SetStatus shows text in the status line. Call it on the UI goroutine.
func (v *ViewerWindow) SetStatus(text string) {
	v.status.SetText(text)
}
