// Package ui is the Fyne front end: the editor window around a board and the
// read-only viewer window.
package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"MyLocalPaint/internal/board"
	"MyLocalPaint/internal/store"
)

const title = "MyLocalPaint"

// Editor is the main window: toolbar, paint area and status line.
type Editor struct {
	// OnChange is called after the board changed, on the UI goroutine.
	OnChange func()

	win     fyne.Window
	board   *board.Board
	paint   *PaintWidget
	toolbar fyne.CanvasObject
	status  *widget.Label
	log     *slog.Logger
}

// NewEditor builds the editor window for b. It takes over b.OnChange.
func NewEditor(a fyne.App, b *board.Board, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Editor{
		win:    a.NewWindow(title),
		board:  b,
		paint:  NewPaintWidget(b),
		status: widget.NewLabel("Ready"),
		log:    logger.With("component", "ui"),
	}
	b.OnChange = e.changed

	e.toolbar = e.newToolbar()
	e.win.SetContent(container.NewBorder(e.toolbar, e.status, nil, nil, e.paint))
	e.fit()
	return e
}

// Window returns the editor window.
func (e *Editor) Window() fyne.Window { return e.win }

// SetStatus shows text in the status line.
func (e *Editor) SetStatus(text string) {
	e.status.SetText(text)
}

// SetSubtitle appends text to the window title.
func (e *Editor) SetSubtitle(text string) {
	if text == "" {
		e.win.SetTitle(title)
		return
	}
	e.win.SetTitle(title + " - " + text)
}

// Open replaces the drawing with doc and sizes the window to its canvas.
func (e *Editor) Open(doc store.Document) {
	e.board.Restore(doc)
	e.fit()
	e.SetStatus(shapeCount("Loaded", len(doc.Shapes)))
}

// ShowAndRun shows the window and runs the application until it closes.
func (e *Editor) ShowAndRun() {
	e.win.ShowAndRun()
}

func (e *Editor) changed() {
	e.paint.Refresh()
	if e.OnChange != nil {
		e.OnChange()
	}
}

// fit resizes the window so the paint area matches the board canvas.
func (e *Editor) fit() {
	w, h := e.board.Size()
	bars := e.toolbar.MinSize().Height + e.status.MinSize().Height
	e.win.Resize(fyne.NewSize(float32(w), float32(h)+bars))
}

func (e *Editor) reset() {
	e.board.Reset()
	e.SetStatus("Canvas cleared")
}
