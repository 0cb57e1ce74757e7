// Package statusline formats the status bar and holds the timed message
// shown on the line below it.
package statusline

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMessageTimeout is how long a message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

// NoName is shown in place of a missing file name.
const NoName = "[No Name]"

// Message is the most recent status message and when it was set.
type Message struct {
	text string
	at   time.Time
}

// Set formats a new message stamped with now.
func (m *Message) Set(now time.Time, format string, args ...any) {
	m.text = fmt.Sprintf(format, args...)
	m.at = now
}

// Text returns the message text regardless of age.
func (m *Message) Text() string {
	return m.text
}

// Time returns when the message was set.
func (m *Message) Time() time.Time {
	return m.at
}

// Visible returns the text if it was set less than timeout before now,
// and "" otherwise.
func (m *Message) Visible(now time.Time, timeout time.Duration) string {
	if m.text == "" || now.Sub(m.at) >= timeout {
		return ""
	}
	return m.text
}

// Info is the document state summarized in the status bar.
type Info struct {
	Filename string
	NumRows  int
	Dirty    bool
	FileType string
	Row      int // 0-based cursor row
	Col      int // 0-based cursor column
}

// Format lays out the status bar for a screen width of width cells. The
// left part is truncated to fit; the right part is right-aligned when
// there is room for it.
func Format(info Info, width int) string {
	if width <= 0 {
		return ""
	}

	name := info.Filename
	if name == "" {
		name = NoName
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if info.Dirty {
		modified = "(modified)"
	}
	left := fmt.Sprintf("%s - %d lines %s", name, info.NumRows, modified)

	ft := info.FileType
	if ft == "" {
		ft = "no ft"
	}
	right := fmt.Sprintf("%s | %d:%d", ft, info.Row+1, info.Col+1)

	if len(left) > width {
		left = left[:width]
	}

	var sb strings.Builder
	sb.Grow(width)
	sb.WriteString(left)
	for n := len(left); n < width; n++ {
		if width-n == len(right) {
			sb.WriteString(right)
			break
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}
