package editor

import (
	"fmt"
	"image"
	"strings"

	"github.com/example/pixed/internal/geom"
	"github.com/example/pixed/internal/grid"
)

// Tool identifies the active drawing tool.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
	ToolFill
	ToolLine
	ToolRectangle
	ToolFilledRectangle
	ToolCircle
	ToolFilledCircle
	ToolInvert
	ToolZoom
)

var toolNames = [...]string{
	ToolPencil:          "pencil",
	ToolEraser:          "eraser",
	ToolFill:            "fill",
	ToolLine:            "line",
	ToolRectangle:       "rectangle",
	ToolFilledRectangle: "filled-rectangle",
	ToolCircle:          "circle",
	ToolFilledCircle:    "filled-circle",
	ToolInvert:          "invert",
	ToolZoom:            "zoom",
}

// Tools returns every tool in toolbar order.
func Tools() []Tool {
	out := make([]Tool, len(toolNames))
	for i := range toolNames {
		out[i] = Tool(i)
	}
	return out
}

func (t Tool) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool looks a tool up by name. Underscores and spaces are accepted in
// place of dashes.
func ParseTool(s string) (Tool, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return ToolPencil, fmt.Errorf("unknown tool %q", s)
}

// Direct reports whether the tool paints straight onto the grid on every
// pointer event.
func (t Tool) Direct() bool {
	switch t {
	case ToolPencil, ToolEraser, ToolFill:
		return true
	}
	return false
}

// Shape reports whether the tool draws a shape between the anchor and the
// release point.
func (t Tool) Shape() bool {
	switch t {
	case ToolLine, ToolRectangle, ToolFilledRectangle, ToolCircle, ToolFilledCircle, ToolInvert:
		return true
	}
	return false
}

// PencilColor selects the value the pencil writes.
type PencilColor int

const (
	Black PencilColor = iota
	White
)

// Value returns the grid value written by the colour. Black is ink.
func (c PencilColor) Value() bool { return c == Black }

func (c PencilColor) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParsePencilColor converts "black" or "white" into a PencilColor.
func ParsePencilColor(s string) (PencilColor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Black, fmt.Errorf("unknown pencil color %q", s)
}

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// DrawShape applies a shape tool between a and b directly onto g. Shapes are
// always drawn in ink. It reports false for tools that are not shapes.
func DrawShape(g *grid.Grid, t Tool, a, b image.Point) bool {
	switch t {
	case ToolLine:
		geom.Line(g, a, b, true)
	case ToolRectangle:
		geom.Rect(g, a, b, true, false)
	case ToolFilledRectangle:
		geom.Rect(g, a, b, true, true)
	case ToolCircle:
		geom.Circle(g, a, geom.Radius(a, b), true, false)
	case ToolFilledCircle:
		geom.Circle(g, a, geom.Radius(a, b), true, true)
	case ToolInvert:
		geom.Invert(g, a, b)
	case ToolPencil, ToolEraser, ToolFill, ToolZoom:
		return false
	default:
		return false
	}
	return true
}

// PreviewShape returns a copy of base with the shape drawn from anchor to
// current. base is left untouched. Non-shape tools yield an unchanged copy.
func PreviewShape(t Tool, anchor, current image.Point, base *grid.Grid) *grid.Grid {
	preview := base.Clone()
	DrawShape(preview, t, anchor, current)
	return preview
}

// Paint applies a direct-paint tool once at p onto g. The pencil writes the
// colour's value with brush, the eraser clears with brush and fill toggles
// the region under p. It reports false for tools that do not paint directly.
func Paint(g *grid.Grid, t Tool, p image.Point, brush geom.Brush, c PencilColor) bool {
	switch t {
	case ToolPencil:
		geom.Stamp(g, p, brush, c.Value())
	case ToolEraser:
		geom.Stamp(g, p, brush, false)
	case ToolFill:
		if g.In(p) {
			geom.FloodFill(g, p, !g.At(p))
		}
	case ToolLine, ToolRectangle, ToolFilledRectangle, ToolCircle, ToolFilledCircle, ToolInvert, ToolZoom:
		return false
	default:
		return false
	}
	return true
}
