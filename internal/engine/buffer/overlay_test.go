package buffer

import (
	"testing"

	"github.com/lemodoescoding/te/internal/renderer/highlight"
)

func TestOverlayAndRestore(t *testing.T) {
	doc := New(WithSyntax(highlight.NewDatabase().Lookup("c")))
	doc.AppendRow([]byte("int x = 1;"))
	doc.MarkClean()

	saved := doc.SaveHighlight(0)
	doc.OverlayHighlight(0, 4, 1, highlight.SearchMatch)

	r := doc.Row(0)
	if r.HL[4] != highlight.SearchMatch {
		t.Errorf("HL[4] = %v, want match", r.HL[4])
	}
	if r.HL[0] != highlight.Keyword2 || r.HL[5] == highlight.SearchMatch {
		t.Error("overlay touched columns outside its span")
	}
	if doc.Dirty() {
		t.Error("overlay should not dirty the document")
	}

	doc.RestoreHighlight(0, saved)
	for i, c := range saved {
		if r.HL[i] != c {
			t.Errorf("HL[%d] = %v after restore, want %v", i, r.HL[i], c)
		}
	}
}

func TestOverlayClipping(t *testing.T) {
	doc := New()
	doc.AppendRow([]byte("abc"))

	doc.OverlayHighlight(0, 1, 10, highlight.SearchMatch)
	r := doc.Row(0)
	if r.HL[0] != highlight.Normal || r.HL[1] != highlight.SearchMatch || r.HL[2] != highlight.SearchMatch {
		t.Errorf("HL = %v", r.HL)
	}

	// Out of range calls are ignored.
	doc.OverlayHighlight(5, 0, 1, highlight.SearchMatch)
	doc.OverlayHighlight(0, 3, 1, highlight.SearchMatch)
	doc.OverlayHighlight(0, -1, 1, highlight.SearchMatch)
	if doc.SaveHighlight(5) != nil {
		t.Error("SaveHighlight out of range should be nil")
	}
}

func TestRestoreHighlightLengthMismatch(t *testing.T) {
	doc := New()
	doc.AppendRow([]byte("abc"))
	saved := doc.SaveHighlight(0)

	doc.InsertChar(0, 3, 'd')
	doc.OverlayHighlight(0, 0, 4, highlight.SearchMatch)
	doc.RestoreHighlight(0, saved)
	if doc.Row(0).HL[3] != highlight.SearchMatch {
		t.Error("restore with stale length should be ignored")
	}
}
