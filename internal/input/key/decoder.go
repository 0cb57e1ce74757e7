package key

import (
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

const esc = 0x1b

// escapeWait bounds how long a timed-out read waits for the input
// processor to resolve a trailing ESC into the Escape key. The processor
// itself decides after about 60ms.
const escapeWait = 250 * time.Millisecond

// readSize is the most bytes handed to the input processor at once.
const readSize = 128

// specialKeys maps tcell key codes onto the editor's key set.
var specialKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyEsc:        KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
}

// Decoder turns a byte stream into key events. Escape sequences are parsed
// by tcell's terminal-independent input processor.
type Decoder struct {
	r      io.Reader
	proc   tcell.InputProcessor
	events chan tcell.Event
	buf    [readSize]byte

	// escPending is set while the last byte scanned was a lone ESC that
	// the processor has not yet reported.
	escPending bool
}

// NewDecoder creates a decoder reading from r. A read that returns no
// bytes and no error is a timeout.
func NewDecoder(r io.Reader) *Decoder {
	// Every scanned byte yields at most one event, plus one for a
	// deferred Escape, so the channel never blocks the processor.
	events := make(chan tcell.Event, 2*readSize+2)
	return &Decoder{
		r:      r,
		proc:   tcell.NewInputProcessor(events),
		events: events,
	}
}

// ReadEvent reads one key event. It returns ok == false when the read
// timed out before any input arrived. A lone ESC followed by a timeout or
// the end of input is the Escape key.
func (d *Decoder) ReadEvent() (ev Event, ok bool, err error) {
	for {
		if ev, ok := d.next(); ok {
			return ev, true, nil
		}

		n, err := d.r.Read(d.buf[:])
		if n > 0 {
			d.escPending = d.buf[n-1] == esc
			d.proc.ScanUTF8(d.buf[:n])
			continue
		}

		if d.escPending {
			d.escPending = false
			select {
			case tev := <-d.events:
				if ev, ok := d.convert(tev); ok {
					return ev, true, nil
				}
				continue
			case <-time.After(escapeWait):
			}
		}
		return Event{}, false, err
	}
}

// next returns a queued event without blocking.
func (d *Decoder) next() (Event, bool) {
	for {
		select {
		case tev := <-d.events:
			if ev, ok := d.convert(tev); ok {
				return ev, true
			}
		default:
			return Event{}, false
		}
	}
}

// convert maps a tcell event to a key event. Mouse, paste, focus and keys
// the editor has no use for are dropped.
func (d *Decoder) convert(tev tcell.Event) (Event, bool) {
	kev, ok := tev.(*tcell.EventKey)
	if !ok {
		return Event{}, false
	}

	k := kev.Key()
	switch {
	case k == tcell.KeyRune:
		mods := ModNone
		if kev.Modifiers()&tcell.ModAlt != 0 {
			mods = ModAlt
		}
		return NewRuneEvent(kev.Rune(), mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return Ctrl(rune('a' + k - tcell.KeyCtrlA)), true
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		return Ctrl(rune('@' + k - tcell.KeyCtrlSpace)), true
	}

	sk, found := specialKeys[k]
	if !found {
		return Event{}, false
	}
	if sk == KeyEscape {
		d.escPending = false
	}
	return NewSpecialEvent(sk), true
}
