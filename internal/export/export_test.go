package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvas(t *testing.T) *gg.Context {
	t.Helper()
	dc := gg.NewContext(40, 30)
	dc.ClearWithColor(gg.White)
	dc.SetRGB(1, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(5, 5, 20, 10)
	require.NoError(t, dc.Stroke())
	t.Cleanup(func() { dc.Close() })
	return dc
}

func TestWithExt(t *testing.T) {
	assert.Equal(t, "a.png", WithExt("a", ".png"))
	assert.Equal(t, "a.png", WithExt("a.png", ".png"))
	assert.Equal(t, "a.PNG", WithExt("a.PNG", ".png"))
	assert.Equal(t, "a.jpg.png", WithExt("a.jpg", ".png"))
	assert.Equal(t, "dir.v2/drawing.png", WithExt("dir.v2/drawing", ".png"))
}

func TestPNGFileAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	got, err := PNGFile(filepath.Join(dir, "drawing"), canvas(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "drawing.png"), got)

	f, err := os.Open(got)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestPNGFileKeepsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing.PNG")
	got, err := PNGFile(path, canvas(t))
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestPNGFileFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "drawing.png")
	_, err := PNGFile(path, canvas(t))
	assert.ErrorIs(t, err, ErrExport)
}

func TestPNGStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, canvas(t)))
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
}

func TestPDFFile(t *testing.T) {
	dir := t.TempDir()
	got, err := PDFFile(filepath.Join(dir, "sheet"), canvas(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sheet.pdf"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
