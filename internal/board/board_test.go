package board

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MyLocalPaint/internal/geom"
	"MyLocalPaint/internal/shape"
	"MyLocalPaint/internal/store"
)

func newBoard(t *testing.T) *Board {
	t.Helper()
	return New(120, 80, nil)
}

func drag(b *Board, pts ...geom.Point) {
	b.Press(pts[0], false)
	for _, p := range pts[1 : len(pts)-1] {
		b.Drag(p)
	}
	b.Release(pts[len(pts)-1])
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
	_, err := ParseTool("spray")
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Equal(t, shape.FreeHand, ToolEraser.Kind())
	assert.Equal(t, shape.Circle, ToolCircle.Kind())
}

func TestFreeHandGesture(t *testing.T) {
	b := newBoard(t)
	changes := 0
	b.OnChange = func() { changes++ }

	b.Press(geom.Pt(1, 1), false)
	require.Equal(t, 1, b.Len(), "trace is visible as soon as the gesture starts")
	trace := b.Shapes()[0].(*shape.FreeHandShape)
	assert.Equal(t, 1, trace.Len())

	for i, p := range []geom.Point{{X: 2, Y: 2}, {X: 3, Y: 5}, {X: 9, Y: 9}} {
		b.Drag(p)
		assert.Equal(t, i+2, trace.Len())
		assert.Equal(t, p, trace.End())
	}
	b.Release(geom.Pt(9, 9))

	assert.False(t, b.Drawing())
	assert.Equal(t, 1, b.Len(), "release must not add a second shape")
	assert.Equal(t, 4, trace.Len())
	assert.Equal(t, DefaultColor, trace.Color())
	assert.Equal(t, shape.DefaultStrokeWidth, trace.Width())
	assert.Equal(t, 4, changes)

	// drags after release do nothing
	b.Drag(geom.Pt(50, 50))
	assert.Equal(t, 4, trace.Len())
}

func TestEraserGesture(t *testing.T) {
	b := newBoard(t)
	b.SetColor(color.RGBA{B: 255, A: 255})
	b.SetTool(ToolEraser)

	drag(b, geom.Pt(10, 10), geom.Pt(20, 10), geom.Pt(20, 10))
	require.Equal(t, 1, b.Len())
	trace := b.Shapes()[0].(*shape.FreeHandShape)
	assert.Equal(t, EraserColor, trace.Color())
	assert.Equal(t, shape.EraserStrokeWidth, trace.Width())
	assert.Equal(t, color.RGBA{B: 255, A: 255}, b.Color(), "eraser keeps the selected color")
}

func TestPreviewThenCommit(t *testing.T) {
	b := newBoard(t)
	b.SetTool(ToolRectangle)

	b.Press(geom.Pt(10, 10), false)
	assert.Nil(t, b.Preview())

	b.Drag(geom.Pt(20, 20))
	first := b.Preview()
	require.NotNil(t, first)
	assert.Equal(t, 0, b.Len(), "preview is not part of the list")

	b.Drag(geom.Pt(30, 25))
	second := b.Preview()
	assert.NotSame(t, first, second, "preview is rebuilt, not mutated")
	assert.Equal(t, geom.Pt(10, 10), second.Start())
	assert.Equal(t, geom.Pt(30, 25), second.End())
	assert.Equal(t, geom.Pt(20, 20), first.End())

	b.Release(geom.Pt(30, 25))
	assert.Nil(t, b.Preview())
	require.Equal(t, 1, b.Len())
	got := b.Shapes()[0]
	assert.Equal(t, shape.Rectangle, got.Kind())
	assert.Equal(t, geom.Pt(10, 10), got.Start())
	assert.Equal(t, geom.Pt(30, 25), got.End())
}

func TestClickWithoutDragCommitsNothing(t *testing.T) {
	b := newBoard(t)
	b.SetTool(ToolLine)
	b.Press(geom.Pt(5, 5), false)
	b.Release(geom.Pt(5, 5))
	assert.Equal(t, 0, b.Len())
}

func TestEveryToolCommitsItsKind(t *testing.T) {
	for _, tool := range []Tool{ToolRectangle, ToolLine, ToolTriangle, ToolCircle} {
		b := newBoard(t)
		b.SetTool(tool)
		drag(b, geom.Pt(10, 10), geom.Pt(15, 15), geom.Pt(20, 20))
		require.Equal(t, 1, b.Len(), tool.String())
		assert.Equal(t, tool.Kind(), b.Shapes()[0].Kind())
	}
}

func TestToolChangeMidGesture(t *testing.T) {
	b := newBoard(t)
	b.SetTool(ToolCircle)
	b.Press(geom.Pt(10, 10), false)
	b.Drag(geom.Pt(15, 10))
	b.SetTool(ToolFreeHand)
	b.Release(geom.Pt(15, 10))

	require.Equal(t, 1, b.Len())
	assert.Equal(t, shape.Circle, b.Shapes()[0].Kind())
}

func TestRemoveTopmost(t *testing.T) {
	b := newBoard(t)
	b.SetTool(ToolRectangle)
	drag(b, geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(40, 40))
	b.SetTool(ToolCircle)
	drag(b, geom.Pt(20, 20), geom.Pt(25, 20), geom.Pt(30, 20))

	b.Press(geom.Pt(20, 20), true)
	require.Equal(t, 1, b.Len())
	assert.Equal(t, shape.Rectangle, b.Shapes()[0].Kind())
	assert.False(t, b.Drawing(), "a remove press does not start a gesture")

	assert.True(t, b.RemoveAt(geom.Pt(20, 20)))
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.RemoveAt(geom.Pt(20, 20)))
}

func TestReset(t *testing.T) {
	b := newBoard(t)
	drag(b, geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(6, 6))
	b.SetTool(ToolLine)
	b.Press(geom.Pt(1, 1), false)
	b.Drag(geom.Pt(9, 9))

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Preview())
	assert.False(t, b.Drawing())
	assertWhite(t, b.Image())
}

func TestSnapshotRestore(t *testing.T) {
	b := newBoard(t)
	b.SetColor(color.RGBA{G: 200, A: 255})
	b.SetTool(ToolTriangle)
	drag(b, geom.Pt(10, 10), geom.Pt(12, 12), geom.Pt(30, 30))
	b.SetTool(ToolFreeHand)
	drag(b, geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3))

	data, err := store.Marshal(b.Snapshot())
	require.NoError(t, err)

	other := New(10, 10, nil)
	doc, err := store.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	other.Restore(doc)

	assert.Equal(t, b.ID(), other.ID())
	assert.Equal(t, b.Color(), other.Color())
	w, h := other.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 80, h)
	require.Equal(t, 2, other.Len())
	assert.Equal(t, shape.Triangle, other.Shapes()[0].Kind())
	assert.Equal(t, shape.FreeHand, other.Shapes()[1].Kind())
	assert.Equal(t, image.Rect(0, 0, 120, 80), other.Image().Bounds())
}

func TestResize(t *testing.T) {
	b := newBoard(t)
	b.Resize(200, 100)
	w, h := b.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, image.Rect(0, 0, 200, 100), b.Image().Bounds())

	b.Resize(0, 50)
	w, _ = b.Size()
	assert.Equal(t, 200, w)
}

func TestRasterShowsShapes(t *testing.T) {
	b := newBoard(t)
	assertWhite(t, b.Image())

	b.SetColor(color.Black)
	b.SetTool(ToolRectangle)
	drag(b, geom.Pt(20, 20), geom.Pt(30, 30), geom.Pt(60, 60))

	img := b.Image()
	assert.True(t, isWhite(img.At(40, 40)), "outline only, no fill")
	assert.False(t, isWhite(img.At(40, 19)) && isWhite(img.At(40, 20)), "top edge drawn")

	// removing the rectangle removes its pixels as well
	require.True(t, b.RemoveAt(geom.Pt(40, 40)))
	assertWhite(t, b.Image())
}

func TestRasterIncludesPreview(t *testing.T) {
	b := newBoard(t)
	b.SetColor(color.Black)
	b.SetTool(ToolLine)
	b.Press(geom.Pt(10, 40), false)
	b.Drag(geom.Pt(100, 40))

	img := b.Image()
	assert.False(t, isWhite(img.At(50, 39)) && isWhite(img.At(50, 40)))
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func assertWhite(t *testing.T, img image.Image) {
	t.Helper()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !isWhite(img.At(x, y)) {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, img.At(x, y))
			}
		}
	}
}
