// Package search implements incremental search over a document's rendered
// rows.
//
// A Session lives for one search prompt. After every key the prompt
// receives, the caller passes the query and the key to Update, which
// restores the previous match's highlighting, picks a direction from the
// key and scans for the next row containing the query, wrapping around the
// document. Enter or Escape ends the session.
package search

import (
	"bytes"

	"github.com/lemodoescoding/te/internal/engine/buffer"
	"github.com/lemodoescoding/te/internal/input/key"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
)

// Direction is the scan direction between rows.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Match is a found occurrence, in document coordinates.
type Match struct {
	Row       int
	Col       int // character column
	RenderCol int
}

// Session is the state of one incremental search.
type Session struct {
	doc       *buffer.Document
	lastMatch int
	direction Direction

	savedRow int
	savedHL  []highlight.Class
}

// NewSession starts a search over doc.
func NewSession(doc *buffer.Document) *Session {
	return &Session{
		doc:       doc,
		lastMatch: -1,
		direction: Forward,
		savedRow:  -1,
	}
}

// Update handles one prompt key with the query typed so far. It returns
// the match the cursor should move to, if any.
func (s *Session) Update(query string, ev key.Event) (Match, bool) {
	s.restore()

	switch ev.Key {
	case key.KeyEnter, key.KeyEscape:
		s.lastMatch = -1
		s.direction = Forward
		return Match{}, false
	case key.KeyRight, key.KeyDown:
		s.direction = Forward
	case key.KeyLeft, key.KeyUp:
		s.direction = Backward
	default:
		s.lastMatch = -1
		s.direction = Forward
	}

	if s.lastMatch == -1 {
		s.direction = Forward
	}
	if query == "" {
		return Match{}, false
	}
	return s.next([]byte(query))
}

// next scans at most every row once, starting after the last match.
func (s *Session) next(query []byte) (Match, bool) {
	n := s.doc.NumRows()
	current := s.lastMatch
	for i := 0; i < n; i++ {
		current += int(s.direction)
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		row := s.doc.Row(current)
		idx := bytes.Index(row.Render, query)
		if idx < 0 {
			continue
		}

		s.lastMatch = current
		s.savedRow = current
		s.savedHL = s.doc.SaveHighlight(current)
		s.doc.OverlayHighlight(current, idx, len(query), highlight.SearchMatch)
		return Match{
			Row:       current,
			Col:       s.doc.RenderToChar(current, idx),
			RenderCol: idx,
		}, true
	}
	return Match{}, false
}

// restore puts back the highlighting the last match overwrote.
func (s *Session) restore() {
	if s.savedHL == nil {
		return
	}
	s.doc.RestoreHighlight(s.savedRow, s.savedHL)
	s.savedRow = -1
	s.savedHL = nil
}

// Close restores any overlaid highlighting. It is safe to call after
// Enter or Escape has already done so.
func (s *Session) Close() {
	s.restore()
}
