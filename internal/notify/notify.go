// Package notify turns canvas events into desktop notifications.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/example/pixpaint/assets"
	"github.com/example/pixpaint/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCopy fires when the canvas is copied to the clipboard.
	EventCopy Event = "copy"
	// EventPaste fires when a clipboard image is pasted onto the canvas.
	EventPaste Event = "paste"
	// EventClear fires when the canvas is wiped.
	EventClear Event = "clear"
)

// Events lists every event in a stable order.
func Events() []Event { return []Event{EventCopy, EventPaste, EventClear} }

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "pixpaint",
		Events: map[Event]EventPreference{
			EventCopy:  {Template: "Copied %s to clipboard"},
			EventPaste: {Template: "Pasted %s"},
			EventClear: {Template: "Cleared %s"},
		},
	}
}

// LoadPreferences reads overrides from PIXPAINT_NOTIFY_* environment
// variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("PIXPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, event := range Events() {
		key := "PIXPAINT_NOTIFY_" + strings.ToUpper(string(event)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			p := prefs.Events[event]
			p.Template = v
			prefs.Events[event] = p
		}
	}
	return prefs
}

// notifyFn is swapped out in tests.
var notifyFn = platform.Notify

// Notifier sends OS-level notifications for the events it has been enabled
// for. A nil Notifier is valid and sends nothing.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a Notifier using a copy of prefs. Every event starts disabled.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event will produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

// Copy announces a clipboard copy, attaching img as the icon when given.
func (n *Notifier) Copy(img image.Image) {
	n.withPreview(EventCopy, "canvas", img)
}

// Paste announces a paste of an image with the given size.
func (n *Notifier) Paste(size image.Point) {
	if !n.Enabled(EventPaste) {
		return
	}
	n.withPreview(EventPaste, fmt.Sprintf("%dx%d image", size.X, size.Y), appIcon())
}

// Clear announces that the canvas was wiped.
func (n *Notifier) Clear() {
	if !n.Enabled(EventClear) {
		return
	}
	n.withPreview(EventClear, "canvas", appIcon())
}

// iconFn is swapped out in tests.
var iconFn = assets.IconImage

func appIcon() image.Image {
	img, err := iconFn(64)
	if err != nil {
		log.Printf("app icon: %v", err)
		return nil
	}
	return img
}

func (n *Notifier) withPreview(event Event, detail string, img image.Image) {
	if !n.Enabled(event) {
		return
	}
	opts := platform.Options{}
	if img != nil {
		if path, cleanup, err := createPreview(img); err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(event, detail, opts)
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	tmpl := strings.TrimSpace(n.template(event))
	if tmpl == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(tmpl, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	opts.AppName = n.prefs.Title
	if err := notifyFn(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "pixpaint-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
