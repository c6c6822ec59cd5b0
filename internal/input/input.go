// Package input turns window events into editor calls.
package input

import (
	"image"
	"sort"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixed/internal/editor"
)

// Built-in action names.
const (
	ActionUndo        = "undo"
	ActionRedo        = "redo"
	ActionToggleGrid  = "toggle-grid"
	ActionToggleColor = "toggle-color"
	ActionBrushGrow   = "brush-grow"
	ActionBrushShrink = "brush-shrink"
	ActionZoomIn      = "zoom-in"
	ActionZoomOut     = "zoom-out"
	ActionZoomReset   = "zoom-reset"
	ActionCancel      = "cancel"
	ActionCopy        = "copy"
	ActionSave        = "save"
	ActionQuit        = "quit"
)

// toolKeys are the single-letter tool shortcuts.
var toolKeys = map[editor.Tool]rune{
	editor.ToolPencil:          'p',
	editor.ToolEraser:          'e',
	editor.ToolFill:            'f',
	editor.ToolLine:            'l',
	editor.ToolRectangle:       'r',
	editor.ToolFilledRectangle: 'r',
	editor.ToolCircle:          'c',
	editor.ToolFilledCircle:    'c',
	editor.ToolInvert:          'i',
	editor.ToolZoom:            'z',
}

// ToolAction returns the action name that selects t.
func ToolAction(t editor.Tool) string { return "tool-" + t.String() }

// Binding pairs an action with its shortcuts.
type Binding struct {
	Action string
	Keys   []KeyShortcut
}

// Handler dispatches mouse and key events to an editor.
type Handler struct {
	ed      *editor.Editor
	canvas  image.Rectangle
	actions map[string]func()
	keys    map[KeyShortcut]string
	order   []string

	pressed bool
	inside  bool
}

// Option modifies a Handler during creation.
type Option func(*Handler)

// WithAction registers an extra action, replacing any built-in action of the
// same name.
func WithAction(name string, keys KeyboardShortcuts, fn func()) Option {
	return func(h *Handler) { h.register(name, keys, fn) }
}

// New creates a Handler with the default shortcut table.
func New(ed *editor.Editor, opts ...Option) *Handler {
	h := &Handler{
		ed:      ed,
		actions: map[string]func(){},
		keys:    map[KeyShortcut]string{},
	}
	h.registerDefaults()
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Handler) register(name string, keys KeyboardShortcuts, fn func()) {
	if _, ok := h.actions[name]; !ok {
		h.order = append(h.order, name)
	}
	h.actions[name] = fn
	if keys == nil {
		return
	}
	for _, sc := range keys.KeyboardShortcuts() {
		h.keys[sc] = name
	}
}

func (h *Handler) registerDefaults() {
	ed := h.ed
	ctrl := key.ModControl
	for _, t := range editor.Tools() {
		t := t
		var keys KeyboardShortcuts
		switch t {
		case editor.ToolFilledRectangle, editor.ToolFilledCircle:
			keys = shortcutList{{Rune: toolKeys[t], Modifiers: key.ModShift}}
		default:
			keys = shortcutList{{Rune: toolKeys[t]}}
		}
		h.register(ToolAction(t), keys, func() { ed.SetTool(t) })
	}
	h.register(ActionToggleGrid, shortcutList{{Rune: 'g'}}, ed.ToggleGrid)
	h.register(ActionToggleColor, shortcutList{{Rune: 'x'}}, func() {
		if ed.Tool() != editor.ToolPencil {
			ed.SetTool(editor.ToolPencil)
			return
		}
		ed.TogglePencilColor()
	})
	h.register(ActionBrushGrow, shortcutList{{Rune: ']'}}, ed.GrowBrush)
	h.register(ActionBrushShrink, shortcutList{{Rune: '['}}, ed.ShrinkBrush)
	h.register(ActionUndo, shortcutList{{Rune: 'z', Modifiers: ctrl}}, func() { ed.Undo() })
	h.register(ActionRedo, shortcutList{
		{Rune: 'z', Modifiers: ctrl | key.ModShift},
		{Rune: 'y', Modifiers: ctrl},
	}, func() { ed.Redo() })
	h.register(ActionZoomIn, shortcutList{{Rune: '=', Modifiers: ctrl}, {Rune: '+', Modifiers: ctrl}}, ed.ZoomIn)
	h.register(ActionZoomOut, shortcutList{{Rune: '-', Modifiers: ctrl}}, ed.ZoomOut)
	h.register(ActionZoomReset, shortcutList{{Rune: '0', Modifiers: ctrl}}, ed.ZoomReset)
	h.register(ActionCancel, shortcutList{{Code: key.CodeEscape}}, ed.Cancel)
}

// SetCanvas records where the grid is drawn on the device. The editor's
// viewport origin follows the rectangle's top-left corner.
func (h *Handler) SetCanvas(r image.Rectangle) {
	h.canvas = r
	h.ed.SetOrigin(r.Min)
}

// Canvas returns the device rectangle set by SetCanvas.
func (h *Handler) Canvas() image.Rectangle { return h.canvas }

// Do runs the named action and reports whether it exists.
func (h *Handler) Do(name string) bool {
	fn, ok := h.actions[name]
	if ok && fn != nil {
		fn()
	}
	return ok
}

// Key handles a key event and reports whether it triggered an action.
func (h *Handler) Key(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	name, ok := h.keys[fromEvent(e)]
	if !ok {
		return false
	}
	return h.Do(name)
}

// Mouse handles a mouse event and reports whether the editor may need
// repainting.
func (h *Handler) Mouse(e mouse.Event) bool {
	d := image.Pt(int(e.X), int(e.Y))
	p := h.ed.ToGrid(d)
	inside := d.In(h.canvas)

	if e.Button.IsWheel() {
		if e.Modifiers&key.ModControl == 0 {
			return false
		}
		switch e.Button {
		case mouse.ButtonWheelUp:
			h.ed.ZoomIn()
		case mouse.ButtonWheelDown:
			h.ed.ZoomOut()
		default:
			return false
		}
		return true
	}

	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft && e.Button != mouse.ButtonRight {
			return false
		}
		if !inside {
			return false
		}
		h.inside = true
		h.pressed = true
		b := editor.ButtonLeft
		if e.Button == mouse.ButtonRight {
			b = editor.ButtonRight
		}
		h.ed.PointerDown(p, b)
		return true
	case mouse.DirRelease:
		if !h.pressed {
			return false
		}
		h.pressed = false
		h.ed.PointerUp(p)
		return true
	}

	switch {
	case inside && !h.inside:
		h.inside = true
		h.ed.PointerEnter(p)
	case !inside && h.inside:
		h.inside = false
		h.ed.PointerLeave()
	case inside:
		h.ed.PointerMove(p)
	default:
		return false
	}
	return true
}

// Bindings lists every action with its shortcuts, in registration order.
func (h *Handler) Bindings() []Binding {
	byAction := map[string][]KeyShortcut{}
	for sc, name := range h.keys {
		byAction[name] = append(byAction[name], sc)
	}
	out := make([]Binding, 0, len(h.order))
	for _, name := range h.order {
		keys := byAction[name]
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out = append(out, Binding{Action: name, Keys: keys})
	}
	return out
}
