package backend

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Sequences for the cursor-report size fallback.
const (
	seqCursorFar    = "\x1b[999C\x1b[999B"
	seqCursorReport = "\x1b[6n"
)

// querySize finds the terminal size by pushing the cursor to the bottom
// right corner and asking the terminal where it ended up.
func querySize(rw io.ReadWriter) (rows, cols int, err error) {
	if _, err := io.WriteString(rw, seqCursorFar+seqCursorReport); err != nil {
		return 0, 0, fmt.Errorf("request cursor position: %w", err)
	}

	var buf [32]byte
	n := 0
	for n < len(buf) {
		m, err := rw.Read(buf[n : n+1])
		if err != nil {
			return 0, 0, fmt.Errorf("read cursor position: %w", err)
		}
		if m == 0 {
			break
		}
		n++
		if buf[n-1] == 'R' {
			break
		}
	}
	return parseCursorReport(buf[:n])
}

// parseCursorReport parses a "ESC [ rows ; cols R" reply.
func parseCursorReport(b []byte) (rows, cols int, err error) {
	if !bytes.HasPrefix(b, []byte("\x1b[")) || !bytes.HasSuffix(b, []byte("R")) {
		return 0, 0, fmt.Errorf("malformed cursor report %q", b)
	}
	body := b[2 : len(b)-1]
	r, c, ok := bytes.Cut(body, []byte(";"))
	if !ok {
		return 0, 0, fmt.Errorf("malformed cursor report %q", b)
	}
	rows, err = strconv.Atoi(string(r))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report rows: %w", err)
	}
	cols, err = strconv.Atoi(string(c))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report cols: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("cursor report %dx%d out of range", rows, cols)
	}
	return rows, cols, nil
}
