package buffer

import "github.com/lemodoescoding/te/internal/renderer/highlight"

// SaveHighlight returns a copy of the highlight classes of row at, or nil
// when at is out of range.
func (d *Document) SaveHighlight(at int) []highlight.Class {
	r := d.Row(at)
	if r == nil {
		return nil
	}
	return append([]highlight.Class(nil), r.HL...)
}

// RestoreHighlight puts back classes taken with SaveHighlight. It is a no-op
// when the row has since changed length.
func (d *Document) RestoreHighlight(at int, saved []highlight.Class) {
	r := d.Row(at)
	if r == nil || len(saved) != len(r.HL) {
		return
	}
	copy(r.HL, saved)
}

// OverlayHighlight sets n render columns of row at, starting at start, to
// class c. The span is clipped to the row. The document is not marked
// dirty and the next edit of the row recomputes its classes.
func (d *Document) OverlayHighlight(at, start, n int, c highlight.Class) {
	r := d.Row(at)
	if r == nil || start < 0 || start >= len(r.HL) || n <= 0 {
		return
	}
	end := min(start+n, len(r.HL))
	highlight.Fill(r.HL[start:end], c)
}
