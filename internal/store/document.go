// Package store saves and loads drawings as JSON documents.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"MyLocalPaint/internal/geom"
	"MyLocalPaint/internal/shape"
)

// Version is the document format written by Encode.
const Version = 1

var (
	ErrInvalidDocument    = errors.New("invalid document")
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

// Document is everything a drawing persists: the shapes in paint order, the
// selected color and the canvas size. The baked raster is not stored; a
// loaded drawing re-renders from its shapes.
type Document struct {
	ID      string
	SavedAt time.Time
	Color   color.RGBA
	Width   int
	Height  int
	Shapes  []shape.Shape
}

// NewDocument returns an empty document with a fresh id.
func NewDocument(width, height int, c color.Color) Document {
	return Document{
		ID:     uuid.NewString(),
		Color:  opaque(c),
		Width:  width,
		Height: height,
	}
}

type documentJSON struct {
	Version int         `json:"version"`
	ID      string      `json:"id"`
	SavedAt time.Time   `json:"saved_at"`
	Color   string      `json:"color"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Shapes  []shapeJSON `json:"shapes"`
}

type shapeJSON struct {
	Kind        string       `json:"kind"`
	Start       geom.Point   `json:"start"`
	End         geom.Point   `json:"end"`
	Color       string       `json:"color"`
	StrokeWidth float64      `json:"stroke_width,omitempty"`
	Points      []geom.Point `json:"points,omitempty"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{
		Version: Version,
		ID:      d.ID,
		SavedAt: d.SavedAt,
		Color:   FormatColor(d.Color),
		Width:   d.Width,
		Height:  d.Height,
		Shapes:  make([]shapeJSON, 0, len(d.Shapes)),
	}
	for _, s := range d.Shapes {
		rec := shapeJSON{
			Kind:  s.Kind().String(),
			Start: s.Start(),
			End:   s.End(),
			Color: FormatColor(s.Color()),
		}
		if fh, ok := s.(*shape.FreeHandShape); ok {
			rec.StrokeWidth = fh.Width()
			rec.Points = fh.Points()
		}
		out.Shapes = append(out.Shapes, rec)
	}
	return json.Marshal(out)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if in.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, in.Version)
	}
	if in.Width <= 0 || in.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidDocument, in.Width, in.Height)
	}

	col, err := ParseColor(in.Color)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	shapes := make([]shape.Shape, 0, len(in.Shapes))
	for i, rec := range in.Shapes {
		s, err := rec.build()
		if err != nil {
			return fmt.Errorf("%w: shape %d: %v", ErrInvalidDocument, i, err)
		}
		shapes = append(shapes, s)
	}

	*d = Document{
		ID:      in.ID,
		SavedAt: in.SavedAt,
		Color:   col,
		Width:   in.Width,
		Height:  in.Height,
		Shapes:  shapes,
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (rec shapeJSON) build() (shape.Shape, error) {
	kind, err := shape.ParseKind(rec.Kind)
	if err != nil {
		return nil, err
	}
	col, err := ParseColor(rec.Color)
	if err != nil {
		return nil, err
	}
	if kind == shape.FreeHand {
		return shape.NewFreeHandFromPoints(rec.Points, col, rec.StrokeWidth)
	}
	return shape.New(kind, rec.Start, rec.End, col)
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Decode reads a whole document from r. On error the returned document is
// the zero value and nothing else has been touched.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, ErrInvalidDocument) || errors.Is(err, ErrUnsupportedVersion) {
			return Document{}, err
		}
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Marshal is Encode into a byte slice.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes doc to path, stamping SavedAt.
func Save(path string, doc Document) error {
	doc.SavedAt = time.Now().UTC().Truncate(time.Second)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads the document stored at path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}
