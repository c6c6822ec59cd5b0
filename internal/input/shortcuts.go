package input

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut is a key press that triggers an action. Printable keys set
// Rune; other keys set Code.
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

// Keys builds a KeyboardShortcuts from shortcuts.
func Keys(s ...KeyShortcut) KeyboardShortcuts { return shortcutList(s) }

// fromEvent normalises a key event into the form used in the shortcut table.
// Letters are lower-cased with Shift made explicit; for other printable
// runes Shift is implied by the rune itself. Drivers that report control
// characters for Ctrl+letter fall back to the key code.
func fromEvent(e key.Event) KeyShortcut {
	mods := e.Modifiers &^ key.ModMeta
	r := e.Rune
	if r <= 0 || !unicode.IsPrint(r) {
		r = codeRune(e.Code)
	}
	if r <= 0 {
		return KeyShortcut{Code: e.Code, Modifiers: mods}
	}
	if unicode.IsLetter(r) {
		if unicode.IsUpper(r) {
			r = unicode.ToLower(r)
			mods |= key.ModShift
		}
	} else {
		mods &^= key.ModShift
	}
	return KeyShortcut{Rune: r, Modifiers: mods}
}

func codeRune(c key.Code) rune {
	switch {
	case c >= key.CodeA && c <= key.CodeZ:
		return 'a' + rune(c-key.CodeA)
	case c >= key.Code1 && c <= key.Code9:
		return '1' + rune(c-key.Code1)
	}
	switch c {
	case key.Code0:
		return '0'
	case key.CodeEqualSign:
		return '='
	case key.CodeHyphenMinus:
		return '-'
	case key.CodeLeftSquareBracket:
		return '['
	case key.CodeRightSquareBracket:
		return ']'
	}
	return -1
}

var codeNames = map[key.Code]string{
	key.CodeEscape:          "Esc",
	key.CodeReturnEnter:     "Enter",
	key.CodeDeleteBackspace: "Backspace",
	key.CodeTab:             "Tab",
}

func (k KeyShortcut) String() string {
	var parts []string
	if k.Modifiers&key.ModControl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&key.ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&key.ModShift != 0 {
		parts = append(parts, "Shift")
	}
	switch {
	case k.Rune > 0:
		parts = append(parts, strings.ToUpper(string(k.Rune)))
	case codeNames[k.Code] != "":
		parts = append(parts, codeNames[k.Code])
	default:
		parts = append(parts, fmt.Sprintf("Code(%d)", int(k.Code)))
	}
	return strings.Join(parts, "+")
}
