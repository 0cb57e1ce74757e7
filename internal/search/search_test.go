package search

import (
	"testing"

	"github.com/lemodoescoding/te/internal/engine/buffer"
	"github.com/lemodoescoding/te/internal/input/key"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
)

func newDoc(lines ...string) *buffer.Document {
	doc := buffer.New()
	for _, l := range lines {
		doc.AppendRow([]byte(l))
	}
	return doc
}

var (
	typed = key.NewRuneEvent('a', key.ModNone)
	down  = key.NewSpecialEvent(key.KeyDown)
	up    = key.NewSpecialEvent(key.KeyUp)
	right = key.NewSpecialEvent(key.KeyRight)
	left  = key.NewSpecialEvent(key.KeyLeft)
	enter = key.NewSpecialEvent(key.KeyEnter)
	esc   = key.NewSpecialEvent(key.KeyEscape)
)

func TestSearchWrapsForward(t *testing.T) {
	doc := newDoc("needle", "hay", "hay")
	s := NewSession(doc)
	s.lastMatch = 2

	m, ok := s.Update("needle", right)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Row != 0 || m.Col != 0 {
		t.Errorf("match = %+v, want row 0 col 0", m)
	}
}

func TestSearchNavigation(t *testing.T) {
	doc := newDoc("xa", "b", "ya")
	s := NewSession(doc)

	steps := []struct {
		ev   key.Event
		want int
	}{
		{typed, 0},
		{down, 2},
		{down, 0},
		{up, 2},
		{left, 0},
		{typed, 0}, // editing the query restarts from the top
	}
	for i, step := range steps {
		m, ok := s.Update("a", step.ev)
		if !ok {
			t.Fatalf("step %d: no match", i)
		}
		if m.Row != step.want || m.Col != 1 {
			t.Errorf("step %d: match = %+v, want row %d col 1", i, m, step.want)
		}
	}
}

func TestSearchBackwardWithoutMatchStartsForward(t *testing.T) {
	doc := newDoc("one", "two", "one")
	s := NewSession(doc)

	m, ok := s.Update("one", up)
	if !ok || m.Row != 0 {
		t.Errorf("match = %+v, %v; want row 0", m, ok)
	}
	if s.direction != Forward {
		t.Errorf("direction = %v, want forward", s.direction)
	}
}

func TestSearchHighlightOverlay(t *testing.T) {
	doc := newDoc("abc foo", "foo")
	s := NewSession(doc)

	if _, ok := s.Update("foo", typed); !ok {
		t.Fatal("no match")
	}
	r0 := doc.Row(0)
	for i, c := range r0.HL {
		want := highlight.Normal
		if i >= 4 {
			want = highlight.SearchMatch
		}
		if c != want {
			t.Errorf("row 0 HL[%d] = %v, want %v", i, c, want)
		}
	}

	if _, ok := s.Update("foo", down); !ok {
		t.Fatal("no second match")
	}
	for i, c := range doc.Row(0).HL {
		if c != highlight.Normal {
			t.Errorf("row 0 HL[%d] = %v after moving on, want normal", i, c)
		}
	}
	if doc.Row(1).HL[0] != highlight.SearchMatch {
		t.Error("row 1 should carry the match overlay")
	}

	if _, ok := s.Update("foo", enter); ok {
		t.Error("Enter should not report a match")
	}
	for i, c := range doc.Row(1).HL {
		if c != highlight.Normal {
			t.Errorf("row 1 HL[%d] = %v after Enter, want normal", i, c)
		}
	}
	if s.lastMatch != -1 {
		t.Errorf("lastMatch = %d after Enter, want -1", s.lastMatch)
	}
}

func TestSearchEscapeRestores(t *testing.T) {
	doc := buffer.New(buffer.WithSyntax(highlight.NewDatabase().Lookup("c")))
	doc.AppendRow([]byte("int x;"))
	s := NewSession(doc)

	if _, ok := s.Update("int", typed); !ok {
		t.Fatal("no match")
	}
	if doc.Row(0).HL[0] != highlight.SearchMatch {
		t.Fatal("match not highlighted")
	}
	s.Update("int", esc)
	if doc.Row(0).HL[0] != highlight.Keyword2 {
		t.Errorf("HL[0] = %v after Escape, want keyword2", doc.Row(0).HL[0])
	}
	s.Close()
}

func TestSearchTabTranslatesColumn(t *testing.T) {
	doc := newDoc("\tfoo")
	s := NewSession(doc)

	m, ok := s.Update("foo", typed)
	if !ok {
		t.Fatal("no match")
	}
	if m.RenderCol != 8 || m.Col != 1 {
		t.Errorf("match = %+v, want render col 8, col 1", m)
	}
}

func TestSearchNoMatch(t *testing.T) {
	doc := newDoc("abc", "def")
	s := NewSession(doc)

	if _, ok := s.Update("zzz", typed); ok {
		t.Error("unexpected match")
	}
	if _, ok := s.Update("", typed); ok {
		t.Error("empty query should not match")
	}
	if s.lastMatch != -1 {
		t.Errorf("lastMatch = %d, want -1", s.lastMatch)
	}
}

func TestSearchEmptyDocument(t *testing.T) {
	s := NewSession(buffer.New())
	if _, ok := s.Update("x", typed); ok {
		t.Error("match in empty document")
	}
}

func TestSearchCloseRestores(t *testing.T) {
	doc := newDoc("xyz")
	s := NewSession(doc)
	s.Update("y", typed)
	s.Close()
	if doc.Row(0).HL[1] != highlight.Normal {
		t.Error("Close did not restore highlighting")
	}
	s.Close()
}
