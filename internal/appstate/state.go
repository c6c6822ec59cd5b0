package appstate

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/example/pixed/internal/clipboard"
	"github.com/example/pixed/internal/editor"
	"github.com/example/pixed/internal/grid"
	"github.com/example/pixed/internal/notify"
	"github.com/example/pixed/internal/render"
	"github.com/example/pixed/internal/theme"
)

// messageTTL is how long a status message replaces the status line.
const messageTTL = 2 * time.Second

// AppState holds one interactive editing session.
type AppState struct {
	Editor *editor.Editor
	Theme  *theme.Theme
	Output string
	Title  string

	notifier *notify.Notifier
	updateCh chan struct{}
	now      func() time.Time

	mu           sync.Mutex
	message      string
	messageUntil time.Time

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithEditor sets the editing session shown by the window.
func WithEditor(ed *editor.Editor) Option { return func(a *AppState) { a.Editor = ed } }

// WithTheme sets the colour theme.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithOutput sets the PNG path used by Save.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithNotifier sets the desktop notifier used after save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Title:    "pixed",
		updateCh: make(chan struct{}, 1),
		now:      time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Editor == nil {
		a.Editor = editor.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

// NotifyChanged requests a repaint of the window.
func (a *AppState) NotifyChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

func (a *AppState) setMessage(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	a.mu.Lock()
	a.message = msg
	a.messageUntil = a.now().Add(messageTTL)
	a.mu.Unlock()
	a.NotifyChanged()
	time.AfterFunc(messageTTL, a.NotifyChanged)
}

// Message returns the status message if it has not expired.
func (a *AppState) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.message == "" || !a.now().Before(a.messageUntil) {
		return ""
	}
	return a.message
}

// Save writes the sprite to Output as a PNG at one pixel per cell.
func (a *AppState) Save() error {
	if a.Output == "" {
		return errors.New("no output file configured")
	}
	if dir := filepath.Dir(a.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(a.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(out, render.Sprite(a.Editor.Grid(), a.Theme)); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	a.notifier.Save(a.Output)
	a.setMessage("saved %s", a.Output)
	return nil
}

// Copy publishes the sprite image to the clipboard.
func (a *AppState) Copy() error {
	if err := clipboard.WriteImage(render.Sprite(a.Editor.Grid(), a.Theme)); err != nil {
		return err
	}
	a.notifier.Copy("sprite")
	a.setMessage("sprite copied to clipboard")
	return nil
}

// CopyText publishes the sprite as '#'/'.' rows.
func (a *AppState) CopyText() error {
	if err := clipboard.WriteText(a.Editor.Grid().String()); err != nil {
		return err
	}
	a.notifier.Copy("sprite text")
	a.setMessage("sprite text copied to clipboard")
	return nil
}

// Paste replaces the grid with '#'/'.' rows read from the clipboard.
func (a *AppState) Paste() error {
	text, err := clipboard.ReadText()
	if err != nil {
		return err
	}
	g, err := grid.Parse(text)
	if err != nil {
		return fmt.Errorf("clipboard text: %w", err)
	}
	a.Editor.Load(g)
	a.setMessage("pasted %dx%d sprite", g.Width(), g.Height())
	return nil
}
