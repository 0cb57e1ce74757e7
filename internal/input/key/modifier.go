package key

// Modifier represents keyboard modifier keys. A raw terminal reports Ctrl
// folded into the control byte and Alt as an ESC prefix.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt (Meta) key.
	ModAlt
)

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m&ModCtrl != 0
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m&ModAlt != 0
}

// String returns "Ctrl", "Alt", "Ctrl+Alt" or "".
func (m Modifier) String() string {
	switch {
	case m.HasCtrl() && m.HasAlt():
		return "Ctrl+Alt"
	case m.HasCtrl():
		return "Ctrl"
	case m.HasAlt():
		return "Alt"
	}
	return ""
}
