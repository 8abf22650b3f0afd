package board

import (
	"errors"
	"fmt"

	"MyLocalPaint/internal/shape"
)

var ErrUnknownTool = errors.New("unknown tool")

// Tool represents the current drawing tool.
type Tool int

const (
	ToolFreeHand Tool = iota
	ToolEraser
	ToolRectangle
	ToolLine
	ToolTriangle
	ToolCircle
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolFreeHand, ToolEraser, ToolRectangle, ToolLine, ToolTriangle, ToolCircle}

var toolNames = [...]string{
	ToolFreeHand:  "freehand",
	ToolEraser:    "eraser",
	ToolRectangle: "rectangle",
	ToolLine:      "line",
	ToolTriangle:  "triangle",
	ToolCircle:    "circle",
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool is the inverse of Tool.String.
func ParseTool(s string) (Tool, error) {
	for t, name := range toolNames {
		if name == s {
			return Tool(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// Kind is the shape kind the tool produces.
func (t Tool) Kind() shape.Kind {
	switch t {
	case ToolFreeHand, ToolEraser:
		return shape.FreeHand
	case ToolRectangle:
		return shape.Rectangle
	case ToolLine:
		return shape.Line
	case ToolTriangle:
		return shape.Triangle
	case ToolCircle:
		return shape.Circle
	}
	panic(fmt.Sprintf("board: no shape kind for %v", t))
}

// traces reports whether the tool grows a free-hand trace rather than
// previewing a two-point shape.
func (t Tool) traces() bool {
	return t == ToolFreeHand || t == ToolEraser
}
