package appstate

import (
	"sort"
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/pixpaint/internal/tools"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Either Rune or Code identifies the key.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// Shift is ignored so that caps lock and shifted letters still match.
const modifierMask = key.ModControl | key.ModAlt | key.ModMeta

// Keymap binds shortcuts to named actions.
type Keymap struct {
	actions  map[string]func()
	bindings map[KeyShortcut]string
	order    []string
}

func NewKeymap() *Keymap {
	return &Keymap{actions: map[string]func(){}, bindings: map[KeyShortcut]string{}}
}

// Register binds keys to the action name. Registering a name again replaces
// its function and adds the new keys.
func (k *Keymap) Register(name string, keys KeyboardShortcuts, fn func()) {
	if _, ok := k.actions[name]; !ok {
		k.order = append(k.order, name)
	}
	k.actions[name] = fn
	if keys == nil {
		return
	}
	for _, sc := range keys.KeyboardShortcuts() {
		sc.Rune = unicode.ToLower(sc.Rune)
		sc.Modifiers &= modifierMask
		k.bindings[sc] = name
	}
}

// Lookup returns the action bound to e. Rune bindings are tried before key
// code bindings.
func (k *Keymap) Lookup(e key.Event) (string, bool) {
	mods := e.Modifiers & modifierMask
	if e.Rune > 0 {
		if name, ok := k.bindings[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}]; ok {
			return name, true
		}
	}
	if e.Code != key.CodeUnknown {
		if name, ok := k.bindings[KeyShortcut{Code: e.Code, Modifiers: mods}]; ok {
			return name, true
		}
	}
	return "", false
}

// Dispatch runs the action bound to a key press and reports whether one ran.
func (k *Keymap) Dispatch(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	name, ok := k.Lookup(e)
	if !ok {
		return false
	}
	if fn := k.actions[name]; fn != nil {
		fn()
	}
	return true
}

// Actions lists registered action names in registration order.
func (k *Keymap) Actions() []string { return append([]string(nil), k.order...) }

// Bindings lists the shortcuts bound to name.
func (k *Keymap) Bindings(name string) []KeyShortcut {
	var out []KeyShortcut
	for sc, n := range k.bindings {
		if n == name {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rune != out[j].Rune {
			return out[i].Rune < out[j].Rune
		}
		return out[i].Code < out[j].Code
	})
	return out
}

var toolKeys = map[tools.Kind]rune{
	tools.KindPencil:    'p',
	tools.KindRectangle: 'r',
	tools.KindCircle:    'o',
	tools.KindLine:      'l',
	tools.KindFill:      'f',
}

// ToolKey returns the key that selects tool k.
func ToolKey(k tools.Kind) rune { return toolKeys[k] }

// Commands the window reacts to besides the tool keys.
type Commands struct {
	SwitchTool func(tools.Kind)
	Clear      func()
	Copy       func()
	Paste      func()
	Quit       func()
}

// DefaultKeymap binds the standard paint keys to cmds.
func DefaultKeymap(cmds Commands) *Keymap {
	km := NewKeymap()
	for _, kind := range tools.Kinds() {
		kind := kind
		km.Register("tool."+kind.String(), shortcutList{{Rune: toolKeys[kind]}}, func() {
			if cmds.SwitchTool != nil {
				cmds.SwitchTool(kind)
			}
		})
	}
	km.Register("clear", shortcutList{{Rune: 'n'}}, cmds.Clear)
	km.Register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}, {Code: key.CodeC, Modifiers: key.ModControl}}, cmds.Copy)
	km.Register("paste", shortcutList{{Rune: 'v', Modifiers: key.ModControl}, {Code: key.CodeV, Modifiers: key.ModControl}}, cmds.Paste)
	km.Register("quit", shortcutList{{Code: key.CodeEscape}, {Rune: 'q'}}, cmds.Quit)
	return km
}

// String renders a shortcut as text, such as "Ctrl+C" or "Esc".
func (sc KeyShortcut) String() string {
	var s string
	if sc.Modifiers&key.ModControl != 0 {
		s += "Ctrl+"
	}
	if sc.Modifiers&key.ModAlt != 0 {
		s += "Alt+"
	}
	if sc.Modifiers&key.ModMeta != 0 {
		s += "Meta+"
	}
	switch {
	case sc.Rune > 0 && sc.Modifiers != 0:
		return s + string(unicode.ToUpper(sc.Rune))
	case sc.Rune > 0:
		return s + string(sc.Rune)
	case sc.Code == key.CodeEscape:
		return s + "Esc"
	case sc.Code >= key.CodeA && sc.Code <= key.CodeZ:
		return s + string(rune('A'+sc.Code-key.CodeA))
	}
	return s + sc.Code.String()
}
