package appstate

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/input"
	"github.com/example/pixed/internal/notify"
	"github.com/example/pixed/internal/platform"
	"github.com/example/pixed/internal/render"
	"github.com/example/pixed/internal/theme"
)

func TestSaveWritesSpriteAndNotifies(t *testing.T) {
	ed := editor.New(editor.WithSize(4, 3))
	ed.CommitShape(editor.ToolLine, image.Pt(0, 0), image.Pt(3, 0))
	var bodies []string
	n := notify.New(notify.DefaultPreferences(), notify.WithSender(func(_, body string, _ platform.Options) error {
		bodies = append(bodies, body)
		return nil
	}))
	n.Enable(notify.EventSave, true)

	out := filepath.Join(t.TempDir(), "nested", "sprite.png")
	a := New(WithEditor(ed), WithOutput(out), WithNotifier(n))
	if err := a.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("saved bounds %v", img.Bounds())
	}
	th := theme.Default()
	r, _, _, _ := img.At(2, 0).RGBA()
	if uint8(r>>8) != th.Ink.R {
		t.Fatal("top row should be ink")
	}
	if len(bodies) != 1 || !strings.HasPrefix(bodies[0], "Saved ") {
		t.Fatalf("notifications %v", bodies)
	}
	if !strings.HasPrefix(a.Message(), "saved ") {
		t.Fatalf("message %q", a.Message())
	}
}

func TestSaveWithoutOutput(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Fatal("expected error without output path")
	}
}

func TestCopyWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	a := New()
	if err := a.Copy(); err == nil {
		t.Fatal("copy should fail without a display")
	}
	if a.Message() != "" {
		t.Fatal("failed copy should not report success")
	}
}

func TestMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := New()
	a.now = func() time.Time { return now }
	a.setMessage("hello %d", 1)
	if a.Message() != "hello 1" {
		t.Fatalf("message %q", a.Message())
	}
	now = now.Add(messageTTL)
	if a.Message() != "" {
		t.Fatal("message should expire")
	}
}

func TestCanvasRect(t *testing.T) {
	ed := editor.New(editor.WithSize(10, 5), editor.WithZoom(4))
	r := canvasRect(400, 300, ed)
	if r.Dx() != 40 || r.Dy() != 20 {
		t.Fatalf("canvas size %v", r.Size())
	}
	if r.Min != image.Pt(180, (300-render.StatusHeight-20)/2) {
		t.Fatalf("canvas origin %v", r.Min)
	}
	big := editor.New(editor.WithSize(100, 100), editor.WithZoom(8))
	if r := canvasRect(400, 300, big); r.Min != image.Pt(canvasMargin, canvasMargin) {
		t.Fatalf("oversized canvas should pin to the margin, got %v", r.Min)
	}
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(editor.New(editor.WithSize(4, 4), editor.WithZoom(1)))
	if w != minWindowWidth || h != minWindowHeight {
		t.Fatalf("small sprite window %dx%d", w, h)
	}
	w, h = windowSize(editor.New(editor.WithSize(64, 64), editor.WithZoom(32)))
	if w != maxWindowWidth || h != maxWindowHeight {
		t.Fatalf("large sprite window %dx%d", w, h)
	}
}

func TestStatusText(t *testing.T) {
	ed := editor.New(editor.WithSize(8, 8))
	ed.PointerMove(image.Pt(2, 3))
	got := statusText(ed)
	if got != "pencil 1 square black  8x8  zoom 8x  (2,3)" {
		t.Fatalf("status %q", got)
	}
	ed.SetTool(editor.ToolCircle)
	ed.CommitShape(editor.ToolCircle, image.Pt(4, 4), image.Pt(6, 4))
	ed.PointerLeave()
	if got := statusText(ed); got != "circle  8x8  zoom 8x  undo 2" {
		t.Fatalf("status %q", got)
	}
}

func TestCompose(t *testing.T) {
	ed := editor.New(editor.WithSize(4, 4), editor.WithZoom(5))
	th := theme.Default()
	a := New(WithEditor(ed), WithTheme(th))
	ed.ApplyTool(editor.ToolPencil, image.Pt(0, 0), ed.PencilBrush(), editor.Black)
	ed.PointerMove(image.Pt(3, 3))

	dst := image.NewRGBA(image.Rect(0, 0, 100, 80))
	canvas := canvasRect(100, 80, ed)
	compose(dst, a, canvas)

	if dst.RGBAAt(0, 0) != th.Background {
		t.Fatal("background not drawn")
	}
	if dst.RGBAAt(canvas.Min.X+1, canvas.Min.Y+1) != th.Ink {
		t.Fatal("ink pixel not drawn")
	}
	cursor := canvas.Min.Add(image.Pt(15, 15))
	if dst.RGBAAt(cursor.X, cursor.Y) != th.PencilCursor {
		t.Fatal("hover cursor not drawn")
	}
	if dst.RGBAAt(99, 79) != th.StatusBackground {
		t.Fatal("status line not drawn")
	}
}

func TestHandlerSessionActions(t *testing.T) {
	a := New()
	quit := false
	h := a.Handler(func() { quit = true })

	keys := map[string]string{}
	for _, b := range h.Bindings() {
		var names []string
		for _, k := range b.Keys {
			names = append(names, k.String())
		}
		keys[b.Action] = strings.Join(names, ",")
	}
	want := map[string]string{
		input.ActionCopy: "Ctrl+C",
		ActionCopyText:   "Ctrl+Shift+C",
		ActionPaste:      "Ctrl+V",
		input.ActionSave: "Ctrl+S",
		input.ActionQuit: "Ctrl+Q",
	}
	for action, k := range want {
		if keys[action] != k {
			t.Errorf("%s bound to %q, want %q", action, keys[action], k)
		}
	}

	if !h.Do(input.ActionSave) {
		t.Fatal("save action missing")
	}
	if got := a.Message(); got != "save: no output file configured" {
		t.Fatalf("save failure message %q", got)
	}
	h.Do(input.ActionQuit)
	if !quit {
		t.Fatal("quit callback not called")
	}
	if !New().Handler(nil).Do(input.ActionQuit) {
		t.Fatal("nil quit callback should still register quit")
	}
}
