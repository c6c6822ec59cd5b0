package input

import (
	"image"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixed/internal/editor"
)

func newHandler(t *testing.T, opts ...Option) (*editor.Editor, *Handler) {
	t.Helper()
	ed := editor.New(editor.WithSize(8, 8), editor.WithZoom(10))
	h := New(ed, opts...)
	h.SetCanvas(image.Rect(20, 30, 100, 110))
	return ed, h
}

func press(r rune, mods key.Modifiers) key.Event {
	return key.Event{Rune: r, Modifiers: mods, Direction: key.DirPress}
}

func mouseAt(x, y float32, b mouse.Button, d mouse.Direction) mouse.Event {
	return mouse.Event{X: x, Y: y, Button: b, Direction: d}
}

func TestMouseStroke(t *testing.T) {
	ed, h := newHandler(t)
	h.Mouse(mouseAt(25, 35, mouse.ButtonLeft, mouse.DirPress))
	h.Mouse(mouseAt(45, 35, mouse.ButtonNone, mouse.DirNone))
	h.Mouse(mouseAt(45, 35, mouse.ButtonLeft, mouse.DirRelease))
	g := ed.Grid()
	if !g.At(image.Pt(0, 0)) || !g.At(image.Pt(2, 0)) || g.Count() != 2 {
		t.Fatalf("unexpected stroke\n%s", g)
	}
	if !ed.CanUndo() {
		t.Fatal("stroke should be undoable")
	}
}

func TestPressOutsideCanvasIgnored(t *testing.T) {
	ed, h := newHandler(t)
	if h.Mouse(mouseAt(5, 5, mouse.ButtonLeft, mouse.DirPress)) {
		t.Fatal("press outside the canvas should be ignored")
	}
	if h.Mouse(mouseAt(5, 5, mouse.ButtonLeft, mouse.DirRelease)) {
		t.Fatal("release without press should be ignored")
	}
	if ed.Grid().Count() != 0 {
		t.Fatal("grid changed")
	}
}

func TestLeaveAndReenterDuringShape(t *testing.T) {
	ed, h := newHandler(t)
	ed.SetTool(editor.ToolRectangle)
	h.Mouse(mouseAt(25, 35, mouse.ButtonLeft, mouse.DirPress))
	h.Mouse(mouseAt(55, 65, mouse.ButtonNone, mouse.DirNone))
	if ed.State().Preview == nil {
		t.Fatal("expected a preview while dragging")
	}
	h.Mouse(mouseAt(150, 65, mouse.ButtonNone, mouse.DirNone))
	if ed.State().Preview != nil || !ed.State().Dragging {
		t.Fatal("leaving should hide the preview and keep the drag")
	}
	h.Mouse(mouseAt(65, 75, mouse.ButtonNone, mouse.DirNone))
	if ed.State().Preview == nil {
		t.Fatal("re-entering should restore the preview")
	}
	h.Mouse(mouseAt(65, 75, mouse.ButtonLeft, mouse.DirRelease))
	if n := ed.Grid().Count(); n != 16 {
		t.Fatalf("5x5 outline should have 16 pixels, got %d\n%s", n, ed.Grid())
	}
}

func TestRightClickZoomTool(t *testing.T) {
	ed, h := newHandler(t)
	ed.SetTool(editor.ToolZoom)
	h.Mouse(mouseAt(25, 35, mouse.ButtonRight, mouse.DirPress))
	if ed.Zoom() != 9 {
		t.Fatalf("right click should zoom out, zoom is %v", ed.Zoom())
	}
	h.Mouse(mouseAt(25, 35, mouse.ButtonLeft, mouse.DirPress))
	if ed.Zoom() != 10 {
		t.Fatalf("left click should zoom in, zoom is %v", ed.Zoom())
	}
}

func TestCtrlWheelZooms(t *testing.T) {
	ed, h := newHandler(t)
	e := mouseAt(25, 35, mouse.ButtonWheelUp, mouse.DirStep)
	if h.Mouse(e) {
		t.Fatal("plain wheel should not zoom")
	}
	e.Modifiers = key.ModControl
	h.Mouse(e)
	if ed.Zoom() != 11 {
		t.Fatalf("ctrl+wheel up gave zoom %v", ed.Zoom())
	}
}

func TestToolShortcuts(t *testing.T) {
	ed, h := newHandler(t)
	cases := []struct {
		ev   key.Event
		want editor.Tool
	}{
		{press('e', 0), editor.ToolEraser},
		{press('f', 0), editor.ToolFill},
		{press('l', 0), editor.ToolLine},
		{press('r', 0), editor.ToolRectangle},
		{press('R', key.ModShift), editor.ToolFilledRectangle},
		{press('c', 0), editor.ToolCircle},
		{press('C', 0), editor.ToolFilledCircle},
		{press('i', 0), editor.ToolInvert},
		{press('z', 0), editor.ToolZoom},
		{press('p', 0), editor.ToolPencil},
	}
	for _, tc := range cases {
		if !h.Key(tc.ev) {
			t.Fatalf("%q was not handled", tc.ev.Rune)
		}
		if ed.Tool() != tc.want {
			t.Errorf("%q selected %v, want %v", tc.ev.Rune, ed.Tool(), tc.want)
		}
	}
}

func TestUndoRedoShortcuts(t *testing.T) {
	ed, h := newHandler(t)
	ed.ApplyTool(editor.ToolPencil, image.Pt(1, 1), ed.PencilBrush(), editor.Black)
	h.Key(press('z', key.ModControl))
	if ed.Grid().Count() != 0 {
		t.Fatal("ctrl+z should undo")
	}
	h.Key(press('Z', key.ModControl|key.ModShift))
	if ed.Grid().Count() != 1 {
		t.Fatal("ctrl+shift+z should redo")
	}
	h.Key(press('z', key.ModControl))
	h.Key(key.Event{Rune: 0x19, Code: key.CodeY, Modifiers: key.ModControl, Direction: key.DirPress})
	if ed.Grid().Count() != 1 {
		t.Fatal("ctrl+y reported as a control character should redo")
	}
}

func TestSettingShortcuts(t *testing.T) {
	ed, h := newHandler(t)
	h.Key(press(']', 0))
	h.Key(press(']', 0))
	if ed.PencilBrush().Size != 3 {
		t.Fatalf("brush size %d", ed.PencilBrush().Size)
	}
	h.Key(press('[', 0))
	if ed.PencilBrush().Size != 2 {
		t.Fatalf("brush size %d", ed.PencilBrush().Size)
	}
	show := ed.ShowGrid()
	h.Key(press('g', 0))
	if ed.ShowGrid() == show {
		t.Fatal("g should toggle the grid")
	}
	h.Key(press('x', 0))
	if ed.PencilColor() != editor.White {
		t.Fatal("x should toggle the pencil colour")
	}
	ed.SetTool(editor.ToolLine)
	h.Key(press('x', 0))
	if ed.Tool() != editor.ToolPencil || ed.PencilColor() != editor.White {
		t.Fatal("x should reselect the pencil without toggling")
	}
	h.Key(press('+', key.ModControl|key.ModShift))
	if ed.Zoom() != 11 {
		t.Fatalf("ctrl++ gave zoom %v", ed.Zoom())
	}
	h.Key(press('-', key.ModControl))
	h.Key(press('-', key.ModControl))
	if ed.Zoom() != 9 {
		t.Fatalf("ctrl+- gave zoom %v", ed.Zoom())
	}
	h.Key(press('0', key.ModControl))
	if ed.Zoom() != 1 {
		t.Fatalf("ctrl+0 gave zoom %v", ed.Zoom())
	}
}

func TestEscapeCancelsShape(t *testing.T) {
	ed, h := newHandler(t)
	ed.SetTool(editor.ToolLine)
	h.Mouse(mouseAt(25, 35, mouse.ButtonLeft, mouse.DirPress))
	h.Mouse(mouseAt(65, 35, mouse.ButtonNone, mouse.DirNone))
	h.Key(key.Event{Rune: -1, Code: key.CodeEscape, Direction: key.DirPress})
	h.Mouse(mouseAt(65, 35, mouse.ButtonLeft, mouse.DirRelease))
	if ed.Grid().Count() != 0 {
		t.Fatal("escape should cancel the line")
	}
}

func TestKeyReleaseAndUnknownIgnored(t *testing.T) {
	_, h := newHandler(t)
	if h.Key(key.Event{Rune: 'p', Direction: key.DirRelease}) {
		t.Fatal("release should be ignored")
	}
	if h.Key(press('q', 0)) {
		t.Fatal("q has no default binding")
	}
}

func TestWithActionAndBindings(t *testing.T) {
	copied := 0
	_, h := newHandler(t, WithAction(ActionCopy, Keys(KeyShortcut{Rune: 'c', Modifiers: key.ModControl}), func() { copied++ }))
	h.Key(press('c', key.ModControl))
	if copied != 1 {
		t.Fatal("ctrl+c should run the copy action")
	}
	if !h.Do(ActionCopy) || copied != 2 {
		t.Fatal("Do should run registered actions")
	}
	if h.Do("nope") {
		t.Fatal("unknown action reported as handled")
	}
	var redo *Binding
	bindings := h.Bindings()
	for i := range bindings {
		if bindings[i].Action == ActionRedo {
			redo = &bindings[i]
		}
	}
	if redo == nil || len(redo.Keys) != 2 || redo.Keys[0].String() != "Ctrl+Shift+Z" || redo.Keys[1].String() != "Ctrl+Y" {
		t.Fatalf("unexpected redo binding %+v", redo)
	}
	if bindings[len(bindings)-1].Action != ActionCopy {
		t.Fatal("extra actions should come last")
	}
	if bindings[0].Action != ToolAction(editor.ToolPencil) {
		t.Fatalf("first binding %q", bindings[0].Action)
	}
}

func TestShortcutString(t *testing.T) {
	cases := map[KeyShortcut]string{
		{Rune: 'p'}:                               "P",
		{Code: key.CodeEscape}:                    "Esc",
		{Rune: '=', Modifiers: key.ModControl}:    "Ctrl+=",
		{Rune: 'r', Modifiers: key.ModShift}:      "Shift+R",
		{Code: key.CodeF1, Modifiers: key.ModAlt}: "Alt+Code(58)",
	}
	for sc, want := range cases {
		if got := sc.String(); got != want {
			t.Errorf("%+v.String() = %q, want %q", sc, got, want)
		}
	}
}
