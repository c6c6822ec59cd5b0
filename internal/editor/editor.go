// Package editor implements the sprite editing session: the tool state
// machine that turns pointer gestures into grid edits, shape previews and
// undo history.
package editor

import (
	"image"
	"time"

	"github.com/example/pixed/internal/geom"
	"github.com/example/pixed/internal/grid"
	"github.com/example/pixed/internal/history"
	"github.com/example/pixed/internal/viewport"
)

const (
	DefaultWidth  = 16
	DefaultHeight = 16
	MaxBrushSize  = 16
)

// Interaction is the drag state carried between pointer events.
type Interaction struct {
	Dragging bool
	// Tool is the tool that started the gesture.
	Tool Tool
	// Anchor is the grid position of the press; valid while Dragging.
	Anchor image.Point
	// Last is the most recent pointer position of the gesture.
	Last image.Point
	// Preview holds the in-progress shape, or nil.
	Preview *grid.Grid
}

// Editor owns the canonical grid of one editing session.
type Editor struct {
	grid    *grid.Grid
	history *history.History
	state   Interaction

	tool        Tool
	pencil      geom.Brush
	eraser      geom.Brush
	color       PencilColor
	roundEraser bool
	showGrid    bool
	view        viewport.Viewport

	hover    image.Point
	hovering bool

	historyCap  int
	historyOpts []history.Option
	onChange    func()
	onZoom      func(zoom float64)
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithGrid starts the session from a copy of g.
func WithGrid(g *grid.Grid) Option { return func(e *Editor) { e.grid = g.Clone() } }

// WithSize starts the session from a blank grid of the given size.
func WithSize(w, h int) Option { return func(e *Editor) { e.grid = grid.New(w, h) } }

// WithTool sets the initially active tool.
func WithTool(t Tool) Option { return func(e *Editor) { e.tool = t } }

// WithPencilBrush sets the pencil brush.
func WithPencilBrush(b geom.Brush) Option { return func(e *Editor) { e.pencil = b } }

// WithEraserSize sets the eraser brush size.
func WithEraserSize(size int) Option { return func(e *Editor) { e.eraser.Size = size } }

// WithRoundEraser lets the eraser take a round shape. Without it the eraser
// is always square.
func WithRoundEraser() Option { return func(e *Editor) { e.roundEraser = true } }

// WithPencilColor sets the value written by the pencil.
func WithPencilColor(c PencilColor) Option { return func(e *Editor) { e.color = c } }

// WithShowGrid toggles grid lines in the rendered view.
func WithShowGrid(show bool) Option { return func(e *Editor) { e.showGrid = show } }

// WithZoom sets the initial zoom factor.
func WithZoom(z float64) Option { return func(e *Editor) { e.view.Zoom = z } }

// WithHistoryCapacity bounds the number of undo snapshots.
func WithHistoryCapacity(n int) Option { return func(e *Editor) { e.historyCap = n } }

// WithClock replaces the history timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.historyOpts = append(e.historyOpts, history.WithClock(now)) }
}

// WithChangeListener registers a callback invoked whenever the displayed grid,
// the hover cursor or a drawing setting changes.
func WithChangeListener(fn func()) Option { return func(e *Editor) { e.onChange = fn } }

// WithZoomListener registers a callback invoked when the zoom changes.
func WithZoomListener(fn func(zoom float64)) Option { return func(e *Editor) { e.onZoom = fn } }

// New creates an Editor and seeds its history with the initial grid.
func New(opts ...Option) *Editor {
	e := &Editor{
		tool:     ToolPencil,
		pencil:   geom.Brush{Size: 1, Shape: geom.Square},
		eraser:   geom.Brush{Size: 1, Shape: geom.Square},
		color:    Black,
		showGrid: true,
		view:     viewport.New(),
	}
	for _, o := range opts {
		o(e)
	}
	if e.grid == nil {
		e.grid = grid.New(DefaultWidth, DefaultHeight)
	}
	e.pencil = clampBrush(e.pencil)
	e.eraser = e.eraserBrush(e.eraser)
	e.view.Zoom = e.view.Clamp(e.view.Zoom)
	e.history = history.New(e.historyCap, e.historyOpts...)
	e.history.Init(e.grid)
	return e
}

func clampBrush(b geom.Brush) geom.Brush {
	b.Size = min(max(b.Size, 1), MaxBrushSize)
	if b.Shape != geom.Round {
		b.Shape = geom.Square
	}
	return b
}

func (e *Editor) eraserBrush(b geom.Brush) geom.Brush {
	b = clampBrush(b)
	if !e.roundEraser {
		b.Shape = geom.Square
	}
	return b
}

func (e *Editor) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}

// Grid returns a copy of the canonical grid.
func (e *Editor) Grid() *grid.Grid { return e.grid.Clone() }

// Display returns the grid to render: the shape preview while one exists,
// otherwise the canonical grid. The result is owned by the editor and must
// not be modified.
func (e *Editor) Display() *grid.Grid {
	if e.state.Preview != nil {
		return e.state.Preview
	}
	return e.grid
}

// State returns the current drag state. The preview is shared with the
// editor and must not be modified.
func (e *Editor) State() Interaction { return e.state }

// Width returns the grid width.
func (e *Editor) Width() int { return e.grid.Width() }

// Height returns the grid height.
func (e *Editor) Height() int { return e.grid.Height() }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// PencilBrush returns the pencil brush.
func (e *Editor) PencilBrush() geom.Brush { return e.pencil }

// EraserBrush returns the eraser brush.
func (e *Editor) EraserBrush() geom.Brush { return e.eraser }

// PencilColor returns the pencil colour.
func (e *Editor) PencilColor() PencilColor { return e.color }

// ShowGrid reports whether grid lines are enabled.
func (e *Editor) ShowGrid() bool { return e.showGrid }

// Zoom returns the zoom factor.
func (e *Editor) Zoom() float64 { return e.view.Zoom }

// Viewport returns a copy of the viewport.
func (e *Editor) Viewport() viewport.Viewport { return e.view }

// SetOrigin moves the device position of the grid's top-left corner.
func (e *Editor) SetOrigin(p image.Point) { e.view.Origin = p }

// ToGrid maps a device position onto the grid using the current viewport.
func (e *Editor) ToGrid(device image.Point) image.Point { return e.view.ToGrid(device) }

// Hover returns the last pointer position over the grid, if the pointer is
// inside the canvas.
func (e *Editor) Hover() (image.Point, bool) { return e.hover, e.hovering }

// CursorBrush returns the footprint to highlight under the pointer. It
// reports false for tools without a brush.
func (e *Editor) CursorBrush() (geom.Brush, bool) {
	switch e.tool {
	case ToolPencil:
		return e.pencil, true
	case ToolEraser:
		return e.eraser, true
	}
	return geom.Brush{}, false
}

// CanUndo reports whether Undo would change the grid.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change the grid.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// HistoryLen returns the number of stored snapshots.
func (e *Editor) HistoryLen() int { return e.history.Len() }

// SetTool activates t. A gesture in progress is finished first.
func (e *Editor) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.finish()
	e.tool = t
	e.changed()
}

// SetPencilBrush replaces the pencil brush. Sizes are clamped to
// [1, MaxBrushSize].
func (e *Editor) SetPencilBrush(b geom.Brush) {
	e.pencil = clampBrush(b)
	e.changed()
}

// SetEraserSize replaces the eraser size.
func (e *Editor) SetEraserSize(size int) {
	e.eraser = e.eraserBrush(geom.Brush{Size: size, Shape: e.eraser.Shape})
	e.changed()
}

// SetEraserShape changes the eraser profile. Round is ignored unless the
// editor was created WithRoundEraser.
func (e *Editor) SetEraserShape(s geom.Shape) {
	e.eraser = e.eraserBrush(geom.Brush{Size: e.eraser.Size, Shape: s})
	e.changed()
}

// GrowBrush enlarges the brush of the active tool by one.
func (e *Editor) GrowBrush() { e.resizeBrush(1) }

// ShrinkBrush reduces the brush of the active tool by one.
func (e *Editor) ShrinkBrush() { e.resizeBrush(-1) }

func (e *Editor) resizeBrush(delta int) {
	if e.tool == ToolEraser {
		e.SetEraserSize(e.eraser.Size + delta)
		return
	}
	e.SetPencilBrush(geom.Brush{Size: e.pencil.Size + delta, Shape: e.pencil.Shape})
}

// SetPencilColor sets the value written by the pencil.
func (e *Editor) SetPencilColor(c PencilColor) {
	e.color = c
	e.changed()
}

// TogglePencilColor swaps black and white.
func (e *Editor) TogglePencilColor() {
	if e.color == Black {
		e.SetPencilColor(White)
		return
	}
	e.SetPencilColor(Black)
}

// ToggleGrid flips the grid line setting.
func (e *Editor) ToggleGrid() {
	e.showGrid = !e.showGrid
	e.changed()
}

// SetZoom changes the zoom factor, clamped to the viewport range.
func (e *Editor) SetZoom(z float64) { e.zoomed(e.view.SetZoom(z)) }

// ZoomIn increases the zoom by one step.
func (e *Editor) ZoomIn() { e.zoomed(e.view.ZoomIn()) }

// ZoomOut decreases the zoom by one step.
func (e *Editor) ZoomOut() { e.zoomed(e.view.ZoomOut()) }

// ZoomReset returns the zoom to 1.
func (e *Editor) ZoomReset() { e.zoomed(e.view.Reset()) }

// ZoomToFit picks the largest zoom at which the grid fits in area.
func (e *Editor) ZoomToFit(area image.Point) {
	e.zoomed(e.view.Fit(e.grid.Width(), e.grid.Height(), area))
}

func (e *Editor) zoomed(ok bool) {
	if !ok {
		return
	}
	if e.onZoom != nil {
		e.onZoom(e.view.Zoom)
	}
	e.changed()
}
