package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lemodoescoding/te/internal/engine/buffer"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
	"github.com/lemodoescoding/te/internal/renderer/statusline"
	"github.com/lemodoescoding/te/internal/renderer/viewport"
)

// Escape sequences used in a frame.
const (
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqHome       = "\x1b[H"
	seqClearLine  = "\x1b[K"
	seqInvert     = "\x1b[7m"
	seqReset      = "\x1b[m"
	seqClear      = "\x1b[2J"
)

// Screen is everything a frame is drawn from.
type Screen struct {
	Doc      *buffer.Document
	View     *viewport.Viewport
	Filename string
	Message  *statusline.Message

	// Cursor in document coordinates: row and character column.
	CursorRow int
	CursorCol int
}

// Options configures the renderer.
type Options struct {
	Theme          *highlight.Theme
	Banner         string        // shown on an empty document
	MessageTimeout time.Duration // how long a status message stays visible
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Theme:          highlight.DefaultTheme(),
		Banner:         "TE editor",
		MessageTimeout: statusline.DefaultMessageTimeout,
	}
}

// Renderer assembles frames.
type Renderer struct {
	opts Options
	now  func() time.Time
}

// New creates a renderer. Zero option fields fall back to defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Theme == nil {
		opts.Theme = def.Theme
	}
	if opts.MessageTimeout <= 0 {
		opts.MessageTimeout = def.MessageTimeout
	}
	return &Renderer{opts: opts, now: time.Now}
}

// SetClock replaces the time source used for message expiry.
func (r *Renderer) SetClock(now func() time.Time) {
	r.now = now
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(t *highlight.Theme) {
	if t != nil {
		r.opts.Theme = t
	}
}

// Draw renders a frame and writes it to w in one call.
func (r *Renderer) Draw(w io.Writer, s Screen) error {
	frame := r.Render(s)
	_, err := w.Write(frame)
	return err
}

// Render scrolls the viewport to the cursor and returns the frame bytes.
func (r *Renderer) Render(s Screen) []byte {
	rx := s.Doc.CharToRender(s.CursorRow, s.CursorCol)
	s.View.Scroll(s.CursorRow, rx)

	var b bytes.Buffer
	b.WriteString(seqHideCursor)
	b.WriteString(seqHome)

	r.drawRows(&b, s)
	r.drawStatusBar(&b, s)
	r.drawMessageBar(&b, s)

	row, col := s.View.ScreenPosition(s.CursorRow, rx)
	fmt.Fprintf(&b, "\x1b[%d;%dH", row+1, col+1)
	b.WriteString(seqShowCursor)
	return b.Bytes()
}

func (r *Renderer) drawRows(b *bytes.Buffer, s Screen) {
	rows, cols := s.View.Rows(), s.View.Cols()
	numRows := s.Doc.NumRows()

	for y := 0; y < rows; y++ {
		fileRow := y + s.View.RowOffset()
		if fileRow >= numRows {
			if numRows == 0 && y == rows/3 && r.opts.Banner != "" {
				r.drawBanner(b, cols)
			} else {
				b.WriteByte('~')
			}
		} else {
			r.drawText(b, s.Doc.Row(fileRow), s.View.ColOffset(), cols)
		}
		b.WriteString(seqClearLine)
		b.WriteString("\r\n")
	}
}

func (r *Renderer) drawBanner(b *bytes.Buffer, cols int) {
	banner := r.opts.Banner
	if len(banner) > cols {
		banner = banner[:cols]
	}
	padding := (cols - len(banner)) / 2
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		b.WriteByte(' ')
	}
	b.WriteString(banner)
}

// drawText writes the visible slice of row with color changes only where
// the class color changes.
func (r *Renderer) drawText(b *bytes.Buffer, row *buffer.Row, colOffset, cols int) {
	start := min(colOffset, len(row.Render))
	end := min(start+cols, len(row.Render))

	current := highlight.DefaultColor
	for i := start; i < end; i++ {
		c := row.Render[i]
		if c < 32 || c == 127 {
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			b.WriteString(seqInvert)
			b.WriteByte(sym)
			b.WriteString(seqReset)
			if current != highlight.DefaultColor {
				r.writeColor(b, current)
			}
			continue
		}

		color := r.opts.Theme.Color(row.HL[i])
		if color != current {
			current = color
			r.writeColor(b, color)
		}
		b.WriteByte(c)
	}
	if current != highlight.DefaultColor {
		r.writeColor(b, highlight.DefaultColor)
	}
}

func (r *Renderer) writeColor(b *bytes.Buffer, code int) {
	b.WriteString("\x1b[")
	b.WriteString(strconv.Itoa(code))
	b.WriteByte('m')
}

func (r *Renderer) drawStatusBar(b *bytes.Buffer, s Screen) {
	info := statusline.Info{
		Filename: s.Filename,
		NumRows:  s.Doc.NumRows(),
		Dirty:    s.Doc.Dirty(),
		Row:      s.CursorRow,
		Col:      s.CursorCol,
	}
	if p := s.Doc.Syntax(); p != nil {
		info.FileType = p.FileType
	}

	b.WriteString(seqInvert)
	b.WriteString(statusline.Format(info, s.View.Cols()))
	b.WriteString(seqReset)
	b.WriteString("\r\n")
}

func (r *Renderer) drawMessageBar(b *bytes.Buffer, s Screen) {
	b.WriteString(seqClearLine)
	if s.Message == nil {
		return
	}
	msg := s.Message.Visible(r.now(), r.opts.MessageTimeout)
	if len(msg) > s.View.Cols() {
		msg = msg[:s.View.Cols()]
	}
	b.WriteString(msg)
}

// Clear writes the sequence that blanks the terminal and homes the cursor.
func Clear(w io.Writer) error {
	_, err := io.WriteString(w, seqClear+seqHome)
	return err
}
