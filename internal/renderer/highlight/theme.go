package highlight

import "fmt"

// Theme maps highlight classes to ANSI SGR foreground color codes.
type Theme struct {
	colors [classCount]int
}

// DefaultColor is the SGR code for the terminal's default foreground.
const DefaultColor = 39

// DefaultTheme returns the classic eight-color palette.
func DefaultTheme() *Theme {
	t := &Theme{}
	t.colors[Normal] = DefaultColor
	t.colors[LineComment] = 36
	t.colors[BlockComment] = 36
	t.colors[Keyword1] = 33
	t.colors[Keyword2] = 32
	t.colors[String] = 35
	t.colors[Number] = 31
	t.colors[SearchMatch] = 34
	return t
}

// Color returns the SGR code for c. Unknown classes use the Normal color.
func (t *Theme) Color(c Class) int {
	if c >= classCount {
		c = Normal
	}
	return t.colors[c]
}

// Set overrides the color for c. Codes must be valid SGR foreground colors
// (30-37, 39, 90-97).
func (t *Theme) Set(c Class, code int) error {
	if c >= classCount {
		return fmt.Errorf("unknown highlight class %d", c)
	}
	if !(code >= 30 && code <= 37) && code != DefaultColor && !(code >= 90 && code <= 97) {
		return fmt.Errorf("color %d for %s is not an SGR foreground code", code, c)
	}
	t.colors[c] = code
	return nil
}

// Apply sets colors from a name -> code map, as read from configuration.
func (t *Theme) Apply(colors map[string]int) error {
	for name, code := range colors {
		c, ok := ParseClass(name)
		if !ok {
			return fmt.Errorf("unknown highlight class %q", name)
		}
		if err := t.Set(c, code); err != nil {
			return err
		}
	}
	return nil
}
