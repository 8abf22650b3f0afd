// Package board is the drawing-surface controller. It turns pointer gestures
// into shape construction and collection edits, keeps the baked raster layer
// and produces the rendered canvas.
package board

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"

	"MyLocalPaint/internal/geom"
	"MyLocalPaint/internal/shape"
	"MyLocalPaint/internal/state"
	"MyLocalPaint/internal/store"
)

// DefaultColor is the pen color of a new board.
var DefaultColor = color.RGBA{R: 255, A: 255}

// EraserColor is the color eraser traces paint with.
var EraserColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Board owns the shape list and the shape under construction. It is not safe
// for concurrent use; all calls come from the UI event goroutine.
type Board struct {
	shapes *state.ShapeList
	baked  *gg.Context
	docID  string

	tool   Tool
	color  color.RGBA
	width  int
	height int

	// current gesture
	drawing bool
	active  Tool
	start   geom.Point
	preview shape.Shape
	trace   *shape.FreeHandShape

	// OnChange is called after anything visible changed.
	OnChange func()

	log *slog.Logger
}

// New creates an empty board of the given canvas size.
func New(width, height int, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	doc := store.NewDocument(width, height, DefaultColor)
	return &Board{
		shapes: state.NewShapeList(),
		baked:  gg.NewContext(width, height),
		docID:  doc.ID,
		tool:   ToolFreeHand,
		color:  DefaultColor,
		width:  width,
		height: height,
		log:    logger.With("component", "board"),
	}
}

// SetTool selects the tool used by the next gesture.
func (b *Board) SetTool(t Tool) {
	b.tool = t
	b.log.Debug("tool selected", "tool", t)
}

func (b *Board) Tool() Tool { return b.tool }

// SetColor selects the color of the next shapes. Alpha is ignored.
func (b *Board) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.color = color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

func (b *Board) Color() color.RGBA { return b.color }

// Size returns the canvas size.
func (b *Board) Size() (width, height int) { return b.width, b.height }

// ID identifies the drawing across save and load.
func (b *Board) ID() string { return b.docID }

// Shapes returns the committed shapes in paint order.
func (b *Board) Shapes() []shape.Shape { return b.shapes.Shapes() }

// Len returns the number of committed shapes.
func (b *Board) Len() int { return b.shapes.Len() }

// Revision changes whenever the shape list changes.
func (b *Board) Revision() uint64 { return b.shapes.Revision() }

// Preview returns the two-point shape being dragged out, or nil.
func (b *Board) Preview() shape.Shape { return b.preview }

// Drawing reports whether a gesture is in progress.
func (b *Board) Drawing() bool { return b.drawing }

// Press starts a gesture at p. With remove set (secondary button or
// ctrl+primary) it deletes the topmost shape under p instead.
func (b *Board) Press(p geom.Point, remove bool) {
	if remove {
		b.RemoveAt(p)
		return
	}

	b.drawing = true
	b.active = b.tool
	b.start = p
	b.preview = nil
	b.trace = nil

	switch b.active {
	case ToolFreeHand:
		b.beginTrace(p, b.color, shape.DefaultStrokeWidth)
	case ToolEraser:
		b.beginTrace(p, EraserColor, shape.EraserStrokeWidth)
	}
}

// beginTrace appends a one-point trace right away so it shows while drawn.
func (b *Board) beginTrace(p geom.Point, c color.RGBA, width float64) {
	b.trace = shape.NewFreeHand(p, c, width)
	b.shapes.Append(b.trace)
	b.changed()
}

// Drag extends the gesture to p: a trace gains exactly one point, a two-point
// tool rebuilds its preview from the fixed start.
func (b *Board) Drag(p geom.Point) {
	if !b.drawing {
		return
	}

	if b.active.traces() {
		if b.trace == nil {
			return
		}
		b.trace.Append(p)
		b.shapes.Touch()
		b.changed()
		return
	}

	s, err := shape.New(b.active.Kind(), b.start, p, b.color)
	if err != nil {
		b.log.Error("preview failed", "tool", b.active, "err", err)
		return
	}
	b.preview = s
	b.changed()
}

// Release ends the gesture at p. A two-point shape that was dragged out is
// committed once and baked; a trace simply stops growing.
func (b *Board) Release(p geom.Point) {
	if !b.drawing {
		return
	}
	b.drawing = false

	if b.active.traces() {
		if b.trace != nil {
			b.log.Debug("trace finished", "tool", b.active, "points", b.trace.Len())
		}
		b.trace = nil
		return
	}

	if b.preview == nil {
		// press and release without movement draws nothing
		return
	}
	b.preview = nil

	s, err := shape.New(b.active.Kind(), b.start, p, b.color)
	if err != nil {
		b.log.Error("commit failed", "tool", b.active, "err", err)
		return
	}
	b.shapes.Append(s)
	b.bake(s)
	b.log.Debug("shape committed", "kind", s.Kind(), "shapes", b.shapes.Len())
	b.changed()
}

// RemoveAt deletes the topmost shape containing p.
func (b *Board) RemoveAt(p geom.Point) bool {
	s, ok := b.shapes.Take(p)
	if !ok {
		return false
	}
	if s.Kind() != shape.FreeHand {
		b.rebake()
	}
	b.log.Debug("shape removed", "kind", s.Kind(), "at", p, "shapes", b.shapes.Len())
	b.changed()
	return true
}

// Reset clears the shapes and the baked layer and drops any gesture.
func (b *Board) Reset() {
	b.cancelGesture()
	b.shapes.Clear()
	b.baked.Clear()
	b.log.Info("canvas reset")
	b.changed()
}

// Resize changes the canvas size, keeping the baked pixels at the origin.
func (b *Board) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == b.width && height == b.height) {
		return
	}

	old := b.baked
	b.baked = gg.NewContext(width, height)
	b.baked.DrawImage(gg.ImageBufFromImage(old.Image()), 0, 0)
	old.Close()

	b.width, b.height = width, height
	b.changed()
}

// Render draws the committed shapes in order and then the live preview. The
// baked layer is not part of it; see Raster.
func (b *Board) Render(s shape.Surface) error {
	if err := b.shapes.Draw(s); err != nil {
		return err
	}
	if b.drawing && b.preview != nil {
		return b.preview.Render(s)
	}
	return nil
}

// Raster renders the full visible canvas: white background, baked layer,
// committed shapes and any preview. The caller owns the returned context.
func (b *Board) Raster() *gg.Context {
	dc := gg.NewContext(b.width, b.height)
	dc.ClearWithColor(gg.White)
	dc.DrawImage(gg.ImageBufFromImage(b.baked.Image()), 0, 0)
	if err := b.Render(dc); err != nil {
		b.log.Warn("render failed", "err", err)
	}
	return dc
}

// Image is Raster as a plain image.
func (b *Board) Image() image.Image {
	dc := b.Raster()
	defer dc.Close()
	return dc.Image()
}

// Snapshot captures the persistent state. The shapes are shared with the
// board, so encode the snapshot before the board changes again.
func (b *Board) Snapshot() store.Document {
	return store.Document{
		ID:     b.docID,
		Color:  b.color,
		Width:  b.width,
		Height: b.height,
		Shapes: b.shapes.Shapes(),
	}
}

// Restore replaces shapes, color and canvas size with those of doc. The baked
// layer starts out empty at the stored size.
func (b *Board) Restore(doc store.Document) {
	b.cancelGesture()
	b.shapes.Replace(doc.Shapes)
	b.color = doc.Color
	b.docID = doc.ID

	b.baked.Close()
	b.baked = gg.NewContext(doc.Width, doc.Height)
	b.width, b.height = doc.Width, doc.Height

	b.log.Info("document restored", "id", doc.ID, "shapes", len(doc.Shapes),
		"width", doc.Width, "height", doc.Height)
	b.changed()
}

func (b *Board) cancelGesture() {
	b.drawing = false
	b.preview = nil
	b.trace = nil
}

func (b *Board) bake(s shape.Shape) {
	if err := s.Render(b.baked); err != nil {
		b.log.Warn("bake failed", "kind", s.Kind(), "err", err)
	}
}

// rebake redraws the baked layer from the remaining two-point shapes so a
// removed shape disappears.
func (b *Board) rebake() {
	b.baked.Clear()
	for _, s := range b.shapes.Shapes() {
		if s.Kind() != shape.FreeHand {
			b.bake(s)
		}
	}
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
