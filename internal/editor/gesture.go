package editor

import (
	"image"

	"github.com/example/pixed/internal/geom"
	"github.com/example/pixed/internal/grid"
)

// record pushes the canonical grid unless it already is the current history
// entry. Called before an edit it stores the pre-edit state; called after, it
// stores the result so that redo can return to it.
func (e *Editor) record() {
	if !e.history.Matches(e.grid) {
		e.history.Push(e.grid)
	}
}

func (e *Editor) brushFor(t Tool) geom.Brush {
	if t == ToolEraser {
		return e.eraser
	}
	return e.pencil
}

// PointerDown starts a gesture at grid position p. Direct-paint tools apply
// immediately; shape tools only record the anchor; the zoom tool steps the
// zoom in (left) or out (right) without starting a drag.
func (e *Editor) PointerDown(p image.Point, b Button) {
	e.hover, e.hovering = p, true
	if e.state.Dragging {
		return
	}
	switch e.tool {
	case ToolPencil, ToolEraser, ToolFill:
		e.record()
		e.state = Interaction{Dragging: true, Tool: e.tool, Anchor: p, Last: p}
		Paint(e.grid, e.tool, p, e.brushFor(e.tool), e.color)
	case ToolLine, ToolRectangle, ToolFilledRectangle, ToolCircle, ToolFilledCircle, ToolInvert:
		e.state = Interaction{Dragging: true, Tool: e.tool, Anchor: p, Last: p}
	case ToolZoom:
		if b == ButtonRight {
			e.ZoomOut()
		} else {
			e.ZoomIn()
		}
		return
	}
	e.changed()
}

// PointerMove continues a gesture at p. Pencil and eraser paint onto the
// canonical grid; shape tools rebuild the preview from scratch.
func (e *Editor) PointerMove(p image.Point) {
	e.hover, e.hovering = p, true
	if !e.state.Dragging {
		e.changed()
		return
	}
	e.state.Last = p
	switch e.state.Tool {
	case ToolPencil, ToolEraser:
		Paint(e.grid, e.state.Tool, p, e.brushFor(e.state.Tool), e.color)
	case ToolLine, ToolRectangle, ToolFilledRectangle, ToolCircle, ToolFilledCircle, ToolInvert:
		e.state.Preview = PreviewShape(e.state.Tool, e.state.Anchor, p, e.grid)
	case ToolFill, ToolZoom:
	}
	e.changed()
}

// PointerUp ends the gesture at p. Shape tools commit once here; direct
// tools have already written every step.
func (e *Editor) PointerUp(p image.Point) {
	if !e.state.Dragging {
		return
	}
	switch e.state.Tool {
	case ToolPencil, ToolEraser, ToolFill:
		e.record()
	case ToolLine, ToolRectangle, ToolFilledRectangle, ToolCircle, ToolFilledCircle, ToolInvert:
		e.record()
		DrawShape(e.grid, e.state.Tool, e.state.Anchor, p)
		e.record()
	case ToolZoom:
	}
	e.state = Interaction{}
	e.changed()
}

// PointerLeave hides the preview and cursor. The drag itself survives so a
// shape can be finished after the pointer re-enters.
func (e *Editor) PointerLeave() {
	e.hovering = false
	e.state.Preview = nil
	e.changed()
}

// PointerEnter restores the cursor at p and, during a shape drag, the
// preview.
func (e *Editor) PointerEnter(p image.Point) {
	e.hover, e.hovering = p, true
	if e.state.Dragging && e.state.Tool.Shape() {
		e.state.Last = p
		e.state.Preview = PreviewShape(e.state.Tool, e.state.Anchor, p, e.grid)
	}
	e.changed()
}

// Cancel abandons an in-progress shape. Strokes already painted by direct
// tools are kept and recorded.
func (e *Editor) Cancel() {
	if !e.state.Dragging {
		return
	}
	e.finish()
	e.changed()
}

// finish closes any open gesture without committing a pending shape.
func (e *Editor) finish() {
	if e.state.Dragging && e.state.Tool.Direct() {
		e.record()
	}
	e.state = Interaction{}
}

// ApplyTool applies a direct-paint tool once at p as a single history step
// and returns a copy of the result. The eraser ignores the colour and is
// forced square unless round erasers are enabled.
func (e *Editor) ApplyTool(t Tool, p image.Point, b geom.Brush, c PencilColor) *grid.Grid {
	if !t.Direct() {
		return e.grid.Clone()
	}
	e.finish()
	b = clampBrush(b)
	if t == ToolEraser {
		b = e.eraserBrush(b)
	}
	e.record()
	Paint(e.grid, t, p, b, c)
	e.record()
	e.changed()
	return e.grid.Clone()
}

// CommitShape draws a shape between anchor and release onto the canonical
// grid as a single history step and returns a copy of the result.
func (e *Editor) CommitShape(t Tool, anchor, release image.Point) *grid.Grid {
	if !t.Shape() {
		return e.grid.Clone()
	}
	e.finish()
	e.record()
	DrawShape(e.grid, t, anchor, release)
	e.record()
	e.changed()
	return e.grid.Clone()
}

// Undo restores the previous snapshot and returns a copy of it. It reports
// false when there is nothing to undo.
func (e *Editor) Undo() (*grid.Grid, bool) {
	e.finish()
	g, ok := e.history.Undo()
	if !ok {
		return nil, false
	}
	e.grid = g
	e.changed()
	return g.Clone(), true
}

// Redo reapplies the next snapshot and returns a copy of it. It reports false
// at the newest snapshot.
func (e *Editor) Redo() (*grid.Grid, bool) {
	e.finish()
	g, ok := e.history.Redo()
	if !ok {
		return nil, false
	}
	e.grid = g
	e.changed()
	return g.Clone(), true
}

// Clear blanks the grid as one undoable step.
func (e *Editor) Clear() {
	e.finish()
	e.record()
	e.grid.Fill(false)
	e.record()
	e.changed()
}

// Reset replaces the grid with a copy of g and starts a fresh history.
func (e *Editor) Reset(g *grid.Grid) {
	e.state = Interaction{}
	e.grid = g.Clone()
	e.history.Init(e.grid)
	e.changed()
}

// Resize replaces the grid with a w x h grid keeping the overlapping pixels,
// and starts a fresh history.
func (e *Editor) Resize(w, h int) {
	next := grid.New(w, h)
	b := next.Bounds().Intersect(e.grid.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := image.Pt(x, y)
			next.Set(p, e.grid.At(p))
		}
	}
	e.Reset(next)
}

// Load replaces the grid with a copy of g as one undoable step. A grid of a
// different size starts a fresh history instead.
func (e *Editor) Load(g *grid.Grid) {
	if g.Width() != e.grid.Width() || g.Height() != e.grid.Height() {
		e.Reset(g)
		return
	}
	e.finish()
	e.record()
	e.grid = g.Clone()
	e.record()
	e.changed()
}
