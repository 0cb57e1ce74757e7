// Package layout converts raw row bytes into their on-screen form.
//
// Rows are treated as single-byte text: one byte is one column, except a
// tab, which advances to the next tab stop.
package layout

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 8

// TabExpander provides tab expansion utilities.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabStop
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// SetTabWidth sets the tab width.
func (t *TabExpander) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	t.tabWidth = width
}

// Expand returns raw with every tab replaced by spaces up to the next tab
// stop. The result never aliases raw.
func (t *TabExpander) Expand(raw []byte) []byte {
	tabs := 0
	for _, c := range raw {
		if c == '\t' {
			tabs++
		}
	}
	out := make([]byte, 0, len(raw)+tabs*(t.tabWidth-1))
	for _, c := range raw {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%t.tabWidth != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// CharToRender converts a character column in raw to the matching render
// column. Columns past the end of raw are clamped to the row end.
func (t *TabExpander) CharToRender(raw []byte, cx int) int {
	if cx > len(raw) {
		cx = len(raw)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		if raw[j] == '\t' {
			rx += (t.tabWidth - 1) - (rx % t.tabWidth)
		}
		rx++
	}
	return rx
}

// RenderToChar converts a render column back to the character column that
// occupies it. A render column inside an expanded tab maps to that tab;
// anything past the rendered end maps to len(raw).
func (t *TabExpander) RenderToChar(raw []byte, rx int) int {
	cur := 0
	for cx, c := range raw {
		if c == '\t' {
			cur += (t.tabWidth - 1) - (cur % t.tabWidth)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(raw)
}
