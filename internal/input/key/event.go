package key

import "fmt"

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the byte for KeyRune events. For Ctrl events it is the
	// lower-case letter, so Ctrl-S is {KeyRune, 's', ModCtrl}.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key) Event {
	return Event{Key: key}
}

// Ctrl returns the event for Ctrl plus a letter.
func Ctrl(r rune) Event {
	return NewRuneEvent(r, ModCtrl)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsText reports whether the event inserts its byte as text: an unmodified
// rune event that is not a control byte.
func (e Event) IsText() bool {
	return e.IsRune() && e.Modifiers == ModNone && e.Rune >= 32 && e.Rune != 127 && e.Rune <= 0xff
}

// IsCtrl reports whether the event is Ctrl plus r.
func (e Event) IsCtrl(r rune) bool {
	return e.IsRune() && e.Modifiers.HasCtrl() && e.Rune == r
}

// Byte returns the byte carried by a rune event.
func (e Event) Byte() byte {
	return byte(e.Rune)
}

// String returns a short name like "a", "C-s" or "Up".
func (e Event) String() string {
	if !e.IsRune() {
		return e.Key.String()
	}
	if e.Modifiers.HasCtrl() {
		return "C-" + string(e.Rune)
	}
	if e.Modifiers.HasAlt() {
		return "M-" + string(e.Rune)
	}
	if e.Rune < 32 || e.Rune >= 127 {
		return fmt.Sprintf("0x%02x", e.Rune)
	}
	return string(e.Rune)
}
