// Package state holds the ordered shape collection owned by the drawing
// surface.
package state

import (
	"MyLocalPaint/internal/geom"
	"MyLocalPaint/internal/shape"
)

// ShapeList is the ordered shape collection. Insertion order is paint order,
// bottom to top; hit-testing for removal walks the other way so the topmost
// match wins.
//
// A ShapeList is not safe for concurrent use. It belongs to a single
// board.Board and is only touched from that board's goroutine.
type ShapeList struct {
	shapes []shape.Shape
	rev    Revision
}

// NewShapeList returns an empty list.
func NewShapeList() *ShapeList {
	return &ShapeList{shapes: make([]shape.Shape, 0)}
}

// Append puts s on top of the paint order.
func (l *ShapeList) Append(s shape.Shape) {
	l.shapes = append(l.shapes, s)
	l.rev.Tick()
}

// RemoveAt removes the topmost shape containing p and reports whether one was
// found. At most one shape is removed per call.
func (l *ShapeList) RemoveAt(p geom.Point) bool {
	_, ok := l.Take(p)
	return ok
}

// Take is RemoveAt that also returns the removed shape.
func (l *ShapeList) Take(p geom.Point) (shape.Shape, bool) {
	for i := len(l.shapes) - 1; i >= 0; i-- {
		s := l.shapes[i]
		if !s.Contains(p) {
			continue
		}
		copy(l.shapes[i:], l.shapes[i+1:])
		l.shapes[len(l.shapes)-1] = nil
		l.shapes = l.shapes[:len(l.shapes)-1]
		l.rev.Tick()
		return s, true
	}
	return nil, false
}

// Clear empties the list.
func (l *ShapeList) Clear() {
	clear(l.shapes)
	l.shapes = l.shapes[:0]
	l.rev.Tick()
}

// Replace swaps the whole content for shapes, keeping their order.
func (l *ShapeList) Replace(shapes []shape.Shape) {
	l.shapes = make([]shape.Shape, len(shapes))
	copy(l.shapes, shapes)
	l.rev.Tick()
}

// Touch records an in-place change to a shape already in the list, i.e. a
// free-hand trace growing during its gesture.
func (l *ShapeList) Touch() {
	l.rev.Tick()
}

// Draw renders every shape in insertion order, so later shapes paint over
// earlier ones. It stops at the first render error.
func (l *ShapeList) Draw(s shape.Surface) error {
	for _, sh := range l.shapes {
		if err := sh.Render(s); err != nil {
			return err
		}
	}
	return nil
}

// Shapes returns a copy of the list in paint order.
func (l *ShapeList) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(l.shapes))
	copy(out, l.shapes)
	return out
}

// Len returns the number of shapes.
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Revision returns the edit counter; it changes after every mutation.
func (l *ShapeList) Revision() uint64 {
	return l.rev.Load()
}
