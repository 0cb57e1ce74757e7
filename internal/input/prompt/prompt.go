// Package prompt implements the one-line input prompt shown in the message
// bar. A Prompt is fed one key event at a time by the input loop and
// reports when the user accepts or cancels it.
package prompt

import (
	"fmt"

	"github.com/lemodoescoding/te/internal/input/key"
)

// Status is the state of a prompt after a key event.
type Status uint8

const (
	// Active means the prompt is still collecting input.
	Active Status = iota
	// Accepted means Enter was pressed with non-empty input.
	Accepted
	// Canceled means Escape was pressed.
	Canceled
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Accepted:
		return "accepted"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Prompt collects a line of input.
type Prompt struct {
	format string
	buf    []byte
	status Status
}

// New creates a prompt. format must contain one %s verb, which is replaced
// with the input typed so far.
func New(format string) *Prompt {
	return &Prompt{
		format: format,
		buf:    make([]byte, 0, 128),
	}
}

// Handle applies one key event and returns the resulting status. Events
// after the prompt has finished are ignored.
func (p *Prompt) Handle(ev key.Event) Status {
	if p.status != Active {
		return p.status
	}

	switch {
	case ev.Key == key.KeyBackspace || ev.Key == key.KeyDelete:
		if n := len(p.buf); n > 0 {
			p.buf = p.buf[:n-1]
		}
	case ev.Key == key.KeyEscape:
		p.status = Canceled
	case ev.Key == key.KeyEnter:
		if len(p.buf) > 0 {
			p.status = Accepted
		}
	case ev.IsText() && ev.Rune < 128:
		p.buf = append(p.buf, ev.Byte())
	}
	return p.status
}

// Input returns the text typed so far.
func (p *Prompt) Input() string {
	return string(p.buf)
}

// Status returns the current status.
func (p *Prompt) Status() Status {
	return p.status
}

// Done reports whether the prompt was accepted or canceled.
func (p *Prompt) Done() bool {
	return p.status != Active
}

// Message returns the prompt line for the message bar.
func (p *Prompt) Message() string {
	return fmt.Sprintf(p.format, p.buf)
}
