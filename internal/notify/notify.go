// Package notify reports finished saves, exports and clipboard copies as
// desktop notifications.
package notify

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/pixed/assets"
	"github.com/example/pixed/internal/platform"
)

// iconSize is the edge of the icon sent with notifications that have no file
// to show.
const iconSize = 64

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when the sprite is written to disk from the editor.
	EventSave Event = "save"
	// EventCopy fires when the sprite is copied to the clipboard.
	EventCopy Event = "copy"
	// EventExport fires when a replayed script is written to disk.
	EventExport Event = "export"
)

// Events lists every event in a stable order.
func Events() []Event { return []Event{EventSave, EventCopy, EventExport} }

// Preferences describes notification wording.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "pixed",
		Templates: map[Event]string{
			EventSave:   "Saved %s",
			EventCopy:   "Copied %s to clipboard",
			EventExport: "Exported %s",
		},
	}
}

// LoadPreferences applies PIXED_NOTIFY_TITLE and PIXED_NOTIFY_<EVENT>_TEXT
// overrides from the environment to the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("PIXED_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, ev := range Events() {
		key := "PIXED_NOTIFY_" + strings.ToUpper(string(ev)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[ev] = v
		}
	}
	return prefs
}

// Sender delivers one notification.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends notifications for the enabled events.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
}

// Option modifies a Notifier during creation.
type Option func(*Notifier)

// WithSender replaces the platform notification call.
func WithSender(s Sender) Option { return func(n *Notifier) { n.send = s } }

// New creates a Notifier with every event disabled.
func New(prefs Preferences, opts ...Option) *Notifier {
	n := &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: make(map[Event]string, len(prefs.Templates))},
		enabled: make(map[Event]bool),
		send:    platform.Notify,
	}
	for k, v := range prefs.Templates {
		n.prefs.Templates[k] = v
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event is enabled. A nil Notifier has nothing
// enabled.
func (n *Notifier) Enabled(event Event) bool {
	return n != nil && n.enabled[event]
}

// Save announces a sprite written to path; the file doubles as the icon.
func (n *Notifier) Save(path string) { n.file(EventSave, path) }

// Export announces a replay result written to path.
func (n *Notifier) Export(path string) { n.file(EventExport, path) }

// Copy announces a clipboard copy.
func (n *Notifier) Copy(detail string) {
	if !n.Enabled(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "sprite"
	}
	n.dispatch(EventCopy, detail, platform.Options{Icon: appIcon()})
}

func appIcon() image.Image {
	img, err := assets.IconImage(iconSize)
	if err != nil {
		log.Printf("notification icon: %v", err)
		return nil
	}
	return img
}

func (n *Notifier) file(event Event, path string) {
	if !n.Enabled(event) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	if opts.IconPath == "" {
		opts.Icon = appIcon()
	}
	n.dispatch(event, detail, opts)
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.Enabled(event) {
		return
	}
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := template
	if strings.Contains(template, "%s") {
		body = strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	}
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
