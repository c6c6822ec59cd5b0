// Package appstate hosts an editing session in a shiny window.
package appstate

import (
	"fmt"
	"image"
	"image/draw"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/input"
	"github.com/example/pixed/internal/render"
)

const (
	minWindowWidth  = 320
	minWindowHeight = 240
	maxWindowWidth  = 1280
	maxWindowHeight = 960
	canvasMargin    = 16
)

// Session actions bound on top of the editor shortcuts.
const (
	ActionCopyText = "copy-text"
	ActionPaste    = "paste"
)

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the event loop on an existing screen. All editor calls happen on
// this goroutine.
func (a *AppState) Main(s screen.Screen) {
	ed := a.Editor
	width, height := windowSize(ed)
	if width == maxWindowWidth || height == maxWindowHeight {
		ed.ZoomToFit(image.Pt(width-2*canvasMargin, height-render.StatusHeight-2*canvasMargin))
	}

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()

	quit := false
	h := a.Handler(func() { quit = true })
	layout := func() { h.SetCanvas(canvasRect(width, height, ed)) }
	layout()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			layout()
			w.Send(paint.Event{})
		case paint.Event:
			layout()
			drawFrame(s, w, width, height, a)
		case mouse.Event:
			layout()
			if h.Mouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if h.Key(e) {
				if quit {
					return
				}
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}

// Handler binds the editor shortcuts plus the session actions: copy, copy as
// text, paste, save and quit. onQuit may be nil.
func (a *AppState) Handler(onQuit func()) *input.Handler {
	report := func(action string, fn func() error) func() {
		return func() {
			if err := fn(); err != nil {
				a.setMessage("%s: %v", action, err)
			}
		}
	}
	if onQuit == nil {
		onQuit = func() {}
	}
	ctrl := func(r rune, mods key.Modifiers) input.KeyboardShortcuts {
		return input.Keys(input.KeyShortcut{Rune: r, Modifiers: key.ModControl | mods})
	}
	return input.New(a.Editor,
		input.WithAction(input.ActionCopy, ctrl('c', 0), report("copy", a.Copy)),
		input.WithAction(ActionCopyText, ctrl('c', key.ModShift), report("copy", a.CopyText)),
		input.WithAction(ActionPaste, ctrl('v', 0), report("paste", a.Paste)),
		input.WithAction(input.ActionSave, ctrl('s', 0), report("save", a.Save)),
		input.WithAction(input.ActionQuit, ctrl('q', 0), onQuit),
	)
}

// windowSize picks an initial window size that fits the zoomed sprite.
func windowSize(ed *editor.Editor) (int, int) {
	c := render.Size(ed.Display(), ed.Zoom())
	w := min(max(c.X+2*canvasMargin, minWindowWidth), maxWindowWidth)
	h := min(max(c.Y+2*canvasMargin+render.StatusHeight, minWindowHeight), maxWindowHeight)
	return w, h
}

// canvasRect centres the zoomed sprite in the area above the status line.
// Sprites larger than the area are pinned to the top-left margin.
func canvasRect(width, height int, ed *editor.Editor) image.Rectangle {
	c := render.Size(ed.Display(), ed.Zoom())
	areaH := height - render.StatusHeight
	x := max((width-c.X)/2, canvasMargin)
	y := max((areaH-c.Y)/2, canvasMargin)
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+c.X, y+c.Y)}
}

// statusText describes the active tool and settings.
func statusText(ed *editor.Editor) string {
	s := ed.Tool().String()
	if b, ok := ed.CursorBrush(); ok {
		s += fmt.Sprintf(" %d %s", b.Size, b.Shape)
	}
	if ed.Tool() == editor.ToolPencil {
		s += " " + ed.PencilColor().String()
	}
	s += fmt.Sprintf("  %dx%d  zoom %gx", ed.Width(), ed.Height(), ed.Zoom())
	if p, ok := ed.Hover(); ok && ed.Display().In(p) {
		s += fmt.Sprintf("  (%d,%d)", p.X, p.Y)
	}
	if ed.CanUndo() || ed.CanRedo() {
		s += fmt.Sprintf("  undo %d", ed.HistoryLen())
	}
	return s
}

// compose draws one frame into dst.
func compose(dst draw.Image, a *AppState, canvas image.Rectangle) {
	ed := a.Editor
	th := a.Theme
	b := dst.Bounds()
	draw.Draw(dst, b, &image.Uniform{th.Background}, image.Point{}, draw.Src)

	opts := render.Options{Zoom: ed.Zoom(), ShowGrid: ed.ShowGrid(), Theme: th}
	if p, ok := ed.Hover(); ok {
		if brush, ok := ed.CursorBrush(); ok && !ed.State().Dragging {
			c := th.PencilCursor
			if ed.Tool() == editor.ToolEraser {
				c = th.EraserCursor
			}
			opts.Cursor = &render.Cursor{At: p, Brush: brush, Color: c}
		}
	}
	render.Draw(dst, canvas.Min, ed.Display(), opts)

	text := a.Message()
	if text == "" {
		text = statusText(ed)
	}
	render.Status(dst, image.Rect(b.Min.X, b.Max.Y-render.StatusHeight, b.Max.X, b.Max.Y), text, th)
}

func drawFrame(s screen.Screen, w screen.Window, width, height int, a *AppState) {
	if width <= 0 || height <= 0 {
		return
	}
	buf, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer buf.Release()

	compose(buf.RGBA(), a, canvasRect(width, height, a.Editor))
	w.Upload(image.Point{}, buf, buf.Bounds())
	w.Publish()
}
