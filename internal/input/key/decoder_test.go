package key

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// timedReader serves its input one chunk per Read, and reports a timeout
// (0, nil) for each empty chunk.
type timedReader struct {
	chunks [][]byte
}

func (r *timedReader) Read(p []byte) (int, error) {
	for len(r.chunks) > 0 {
		c := r.chunks[0]
		if len(c) == 0 {
			r.chunks = r.chunks[1:]
			return 0, nil
		}
		n := copy(p, c)
		r.chunks[0] = c[n:]
		if len(r.chunks[0]) == 0 {
			r.chunks = r.chunks[1:]
		}
		return n, nil
	}
	return 0, io.EOF
}

func readAll(t *testing.T, d *Decoder) []Event {
	t.Helper()
	var events []Event
	for {
		ev, ok, err := d.ReadEvent()
		if errors.Is(err, io.EOF) {
			return events
		}
		if err != nil {
			t.Fatalf("ReadEvent: %v", err)
		}
		if ok {
			events = append(events, ev)
		}
	}
}

func TestDecodeBytes(t *testing.T) {
	tests := []struct {
		in   byte
		want Event
	}{
		{'a', NewRuneEvent('a', ModNone)},
		{' ', NewRuneEvent(' ', ModNone)},
		{'\r', NewSpecialEvent(KeyEnter)},
		{'\t', NewSpecialEvent(KeyTab)},
		{127, NewSpecialEvent(KeyBackspace)},
		{8, NewSpecialEvent(KeyBackspace)},
		{0x11, Ctrl('q')},
		{0x13, Ctrl('s')},
		{0x06, Ctrl('f')},
		{0x0c, Ctrl('l')},
		{0, Ctrl('@')},
		{0x1c, Ctrl('\\')},
		{'\n', NewSpecialEvent(KeyEnter)},
		{0xe9, NewRuneEvent(0xe9, ModNone)},
	}

	for _, tt := range tests {
		d := NewDecoder(bytes.NewReader([]byte{tt.in}))
		ev, ok, err := d.ReadEvent()
		if err != nil || !ok {
			t.Fatalf("ReadEvent(%#x) = %v, %v", tt.in, ok, err)
		}
		if ev != tt.want {
			t.Errorf("decode %#x = %v, want %v", tt.in, ev, tt.want)
		}
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"\x1b[A", KeyUp},
		{"\x1b[B", KeyDown},
		{"\x1b[C", KeyRight},
		{"\x1b[D", KeyLeft},
		{"\x1bOA", KeyUp},
		{"\x1b[H", KeyHome},
		{"\x1b[F", KeyEnd},
		{"\x1bOH", KeyHome},
		{"\x1bOF", KeyEnd},
		{"\x1b[1~", KeyHome},
		{"\x1b[7~", KeyHome},
		{"\x1b[4~", KeyEnd},
		{"\x1b[8~", KeyEnd},
		{"\x1b[3~", KeyDelete},
		{"\x1b[5~", KeyPageUp},
		{"\x1b[6~", KeyPageDown},
		{"\x1b[1;5A", KeyUp},
	}

	for _, tt := range tests {
		d := NewDecoder(bytes.NewReader([]byte(tt.in)))
		events := readAll(t, d)
		if len(events) != 1 || events[0].Key != tt.want {
			t.Errorf("decode %q = %v, want [%v]", tt.in, events, tt.want)
		}
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	// ESC followed by a timeout is the Escape key.
	d := NewDecoder(&timedReader{chunks: [][]byte{{esc}, {}, []byte("x")}})
	events := readAll(t, d)
	if len(events) != 2 {
		t.Fatalf("got %v", events)
	}
	if events[0].Key != KeyEscape || events[1] != NewRuneEvent('x', ModNone) {
		t.Errorf("got %v", events)
	}
}

func TestDecodeEscapeAtEndOfInput(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte("a\x1b")))
	events := readAll(t, d)
	if len(events) != 2 || events[0].Rune != 'a' || events[1].Key != KeyEscape {
		t.Errorf("got %v", events)
	}
}

func TestDecodeAltPrefix(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte("\x1bxy")))
	events := readAll(t, d)
	want := []Event{NewRuneEvent('x', ModAlt), NewRuneEvent('y', ModNone)}
	if len(events) != 2 || events[0] != want[0] || events[1] != want[1] {
		t.Errorf("got %v, want %v", events, want)
	}
}

func TestDecodeUnknownSequenceDropped(t *testing.T) {
	tests := []struct {
		in   string
		want []Event
	}{
		{"\x1b[Zq", []Event{NewRuneEvent('q', ModNone)}},
		{"\x1b[9~", nil},
		{"\x1b[15~z", []Event{NewRuneEvent('z', ModNone)}},
	}
	for _, tt := range tests {
		events := readAll(t, NewDecoder(bytes.NewReader([]byte(tt.in))))
		if len(events) != len(tt.want) {
			t.Errorf("decode %q = %v, want %v", tt.in, events, tt.want)
			continue
		}
		for i := range tt.want {
			if events[i] != tt.want[i] {
				t.Errorf("decode %q = %v, want %v", tt.in, events, tt.want)
			}
		}
	}
}

func TestDecodeTimeout(t *testing.T) {
	d := NewDecoder(&timedReader{chunks: [][]byte{{}}})
	_, ok, err := d.ReadEvent()
	if ok || err != nil {
		t.Errorf("timeout should give ok=false, err=nil; got %v, %v", ok, err)
	}
}

func TestDecodeMixedStream(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte("hi\x1b[A\r\x7f\x13")))
	events := readAll(t, d)
	want := []Event{
		NewRuneEvent('h', ModNone),
		NewRuneEvent('i', ModNone),
		NewSpecialEvent(KeyUp),
		NewSpecialEvent(KeyEnter),
		NewSpecialEvent(KeyBackspace),
		Ctrl('s'),
	}
	if len(events) != len(want) {
		t.Fatalf("got %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}
