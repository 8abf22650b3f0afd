package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"MyLocalPaint/internal/board"
	"MyLocalPaint/internal/geom"
)

// PaintWidget shows a board and turns pointer gestures into board edits.
type PaintWidget struct {
	widget.BaseWidget

	board  *board.Board
	raster *canvas.Raster
	last   geom.Point
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)
var _ desktop.Cursorable = (*PaintWidget)(nil)

func NewPaintWidget(b *board.Board) *PaintWidget {
	p := &PaintWidget{board: b}
	p.raster = canvas.NewRaster(func(int, int) image.Image {
		return p.board.Image()
	})
	p.raster.SetMinSize(fyne.NewSize(300, 300))
	p.ExtendBaseWidget(p)
	return p
}

func (p *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

// Refresh redraws the board image.
func (p *PaintWidget) Refresh() {
	p.raster.Refresh()
	p.BaseWidget.Refresh()
}

// Resize keeps the board canvas the size of the widget.
func (p *PaintWidget) Resize(size fyne.Size) {
	p.BaseWidget.Resize(size)
	p.board.Resize(int(size.Width), int(size.Height))
}

func (p *PaintWidget) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (p *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	pt := toPoint(e.Position)
	p.last = pt
	switch {
	case e.Button == desktop.MouseButtonSecondary:
		p.board.Press(pt, true)
	case e.Button == desktop.MouseButtonPrimary:
		p.board.Press(pt, e.Modifier&fyne.KeyModifierControl != 0)
	}
}

func (p *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.board.Release(toPoint(e.Position))
}

func (p *PaintWidget) Dragged(e *fyne.DragEvent) {
	p.last = toPoint(e.Position)
	p.board.Drag(p.last)
}

// DragEnd finishes the gesture where the pointer was last seen, in case the
// button is released outside the widget.
func (p *PaintWidget) DragEnd() {
	p.board.Release(p.last)
}

func toPoint(pos fyne.Position) geom.Point {
	return geom.Pt(int(pos.X), int(pos.Y))
}
