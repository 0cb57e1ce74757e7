package engine

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/lemodoescoding/te/internal/engine/buffer"
	"github.com/lemodoescoding/te/internal/engine/cursor"
	"github.com/lemodoescoding/te/internal/input/key"
	"github.com/lemodoescoding/te/internal/renderer/viewport"
)

// Editor is one editing session.
type Editor struct {
	doc  *buffer.Document
	view *viewport.Viewport
	cur  cursor.Cursor
	quit *QuitGuard
}

// New creates an editor over doc shown through view.
func New(doc *buffer.Document, view *viewport.Viewport, opts ...Option) *Editor {
	e := &Editor{
		doc:  doc,
		view: view,
		quit: NewQuitGuard(DefaultQuitTimes),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Doc returns the document.
func (e *Editor) Doc() *buffer.Document {
	return e.doc
}

// View returns the viewport.
func (e *Editor) View() *viewport.Viewport {
	return e.view
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cur
}

// SetCursor moves the cursor, clamped to the document.
func (e *Editor) SetCursor(c cursor.Cursor) {
	e.cur = c.Clamp(e.doc)
}

// RenderCol returns the cursor's column in rendered text.
func (e *Editor) RenderCol() int {
	return e.doc.CharToRender(e.cur.Row, e.cur.Col)
}

// QuitGuard returns the unsaved-changes guard.
func (e *Editor) QuitGuard() *QuitGuard {
	return e.quit
}

// Scroll brings the cursor into view.
func (e *Editor) Scroll() {
	e.view.Scroll(e.cur.Row, e.RenderCol())
}

// Load replaces the document with the lines read from r. Trailing "\n"
// and "\r\n" are stripped; the document is left clean.
func (e *Editor) Load(r io.Reader) error {
	for e.doc.NumRows() > 0 {
		e.doc.DeleteRow(e.doc.NumRows() - 1)
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			e.doc.AppendRow(bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
	}

	e.doc.MarkClean()
	e.cur = cursor.Cursor{}
	e.view.SetScrollState(viewport.ScrollState{})
	return nil
}

// InsertChar inserts c at the cursor. On the row past the end a new row
// is appended first.
func (e *Editor) InsertChar(c byte) {
	if e.cur.Row == e.doc.NumRows() {
		e.doc.AppendRow(nil)
	}
	e.doc.InsertChar(e.cur.Row, e.cur.Col, c)
	e.cur.Col++
}

// InsertNewline splits the row at the cursor, or inserts an empty row
// above when the cursor is at column 0.
func (e *Editor) InsertNewline() {
	if e.cur.Col == 0 {
		e.doc.InsertRow(e.cur.Row, nil)
	} else {
		e.doc.SplitRow(e.cur.Row, e.cur.Col)
	}
	e.cur.Row++
	e.cur.Col = 0
}

// DeleteChar deletes the character before the cursor. At column 0 the row
// is joined onto the previous one.
func (e *Editor) DeleteChar() {
	if e.cur.Row == e.doc.NumRows() {
		return
	}
	if e.cur.Col == 0 && e.cur.Row == 0 {
		return
	}

	if e.cur.Col > 0 {
		e.doc.DeleteChar(e.cur.Row, e.cur.Col-1)
		e.cur.Col--
		return
	}
	col, ok := e.doc.JoinWithPrevious(e.cur.Row)
	if ok {
		e.cur.Row--
		e.cur.Col = col
	}
}

// DeleteForward deletes the character under the cursor.
func (e *Editor) DeleteForward() {
	before := e.cur
	e.Move(key.KeyRight)
	if e.cur != before {
		e.DeleteChar()
	}
}

// Move moves the cursor for an arrow key. Other keys are ignored.
func (e *Editor) Move(k key.Key) {
	switch k {
	case key.KeyLeft:
		e.cur = e.cur.Left(e.doc)
	case key.KeyRight:
		e.cur = e.cur.Right(e.doc)
	case key.KeyUp:
		e.cur = e.cur.Up(e.doc)
	case key.KeyDown:
		e.cur = e.cur.Down(e.doc)
	}
}

// Home moves to the start of the row.
func (e *Editor) Home() {
	e.cur = e.cur.Home()
}

// End moves to the end of the row.
func (e *Editor) End() {
	e.cur = e.cur.End(e.doc)
}

// PageUp moves the cursor to the top of the screen, then a screen up.
func (e *Editor) PageUp() {
	e.cur.Row = e.view.RowOffset()
	e.cur = e.cur.Clamp(e.doc)
	for range e.view.Rows() {
		e.Move(key.KeyUp)
	}
}

// PageDown moves the cursor to the bottom of the screen, then a screen
// down.
func (e *Editor) PageDown() {
	e.cur.Row = min(e.view.RowOffset()+e.view.Rows()-1, e.doc.NumRows())
	e.cur = e.cur.Clamp(e.doc)
	for range e.view.Rows() {
		e.Move(key.KeyDown)
	}
}

// Position is a saved cursor and scroll state.
type Position struct {
	Cursor cursor.Cursor
	Scroll viewport.ScrollState
}

// SavePosition captures the cursor and scroll offsets.
func (e *Editor) SavePosition() Position {
	return Position{Cursor: e.cur, Scroll: e.view.GetScrollState()}
}

// RestorePosition returns to a saved position.
func (e *Editor) RestorePosition(p Position) {
	e.cur = p.Cursor.Clamp(e.doc)
	e.view.SetScrollState(p.Scroll)
}

// JumpTo moves the cursor to row, col and arranges for the next scroll to
// put that row at the top of the screen.
func (e *Editor) JumpTo(row, col int) {
	e.cur = cursor.New(row, col).Clamp(e.doc)
	e.view.SetRowOffset(e.doc.NumRows())
}
