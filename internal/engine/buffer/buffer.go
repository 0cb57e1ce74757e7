package buffer

import (
	"github.com/lemodoescoding/te/internal/renderer/highlight"
	"github.com/lemodoescoding/te/internal/renderer/layout"
)

// Row is one logical line of the document.
//
// Render is derived from Raw and HL always has len(Render) entries. Index
// equals the row's position in the document.
type Row struct {
	Index       int
	Raw         []byte
	Render      []byte
	HL          []highlight.Class
	CommentOpen bool
}

// Document is the ordered row store.
type Document struct {
	slots []Row
	free  []int
	order []int

	dirty  bool
	syntax *highlight.Profile
	tabs   *layout.TabExpander
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		tabs: layout.NewTabExpander(layout.DefaultTabStop),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NumRows returns the number of rows.
func (d *Document) NumRows() int {
	return len(d.order)
}

// Row returns the row at position at, or nil when out of range. The pointer
// is only valid until the next structural change (row insert or delete).
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.order) {
		return nil
	}
	return &d.slots[d.order[at]]
}

// RowLen returns the raw length of the row at position at, or 0 when out
// of range.
func (d *Document) RowLen(at int) int {
	if r := d.Row(at); r != nil {
		return len(r.Raw)
	}
	return 0
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool {
	return d.dirty
}

// MarkClean clears the dirty flag after a load or save.
func (d *Document) MarkClean() {
	d.dirty = false
}

// Syntax returns the active syntax profile, or nil.
func (d *Document) Syntax() *highlight.Profile {
	return d.syntax
}

// SetSyntax switches the active profile and re-highlights every row.
func (d *Document) SetSyntax(p *highlight.Profile) {
	d.syntax = p
	d.highlightAll()
}

// TabWidth returns the tab width used for rendering.
func (d *Document) TabWidth() int {
	return d.tabs.TabWidth()
}

// SetTabWidth changes the tab width and re-renders every row.
func (d *Document) SetTabWidth(width int) {
	if width < 1 || width == d.tabs.TabWidth() {
		return
	}
	d.tabs.SetTabWidth(width)
	for _, id := range d.order {
		d.render(&d.slots[id])
	}
	d.highlightAll()
}

// CharToRender converts a character column on row at to a render column.
func (d *Document) CharToRender(at, cx int) int {
	r := d.Row(at)
	if r == nil {
		return 0
	}
	return d.tabs.CharToRender(r.Raw, cx)
}

// RenderToChar converts a render column on row at to a character column.
func (d *Document) RenderToChar(at, rx int) int {
	r := d.Row(at)
	if r == nil {
		return 0
	}
	return d.tabs.RenderToChar(r.Raw, rx)
}

// FlatText joins every row's raw bytes, each followed by a newline.
func (d *Document) FlatText() []byte {
	size := 0
	for _, id := range d.order {
		size += len(d.slots[id].Raw) + 1
	}
	out := make([]byte, 0, size)
	for _, id := range d.order {
		out = append(out, d.slots[id].Raw...)
		out = append(out, '\n')
	}
	return out
}

// allocSlot returns a free slot id, growing the arena when needed.
func (d *Document) allocSlot() int {
	if n := len(d.free); n > 0 {
		id := d.free[n-1]
		d.free = d.free[:n-1]
		return id
	}
	d.slots = append(d.slots, Row{})
	return len(d.slots) - 1
}

// releaseSlot drops the row's buffers and puts the slot on the free list.
func (d *Document) releaseSlot(id int) {
	d.slots[id] = Row{}
	d.free = append(d.free, id)
}

// reindex restores Index == position for every row from at onwards.
func (d *Document) reindex(at int) {
	for i := at; i < len(d.order); i++ {
		d.slots[d.order[i]].Index = i
	}
}

// render recomputes Render from Raw and resizes HL to match.
func (d *Document) render(r *Row) {
	r.Render = d.tabs.Expand(r.Raw)
	if cap(r.HL) >= len(r.Render) {
		r.HL = r.HL[:len(r.Render)]
	} else {
		r.HL = make([]highlight.Class, len(r.Render))
	}
}

// update re-renders the row at position at and re-highlights from there.
func (d *Document) update(at int) {
	d.render(d.Row(at))
	d.highlightFrom(at)
	d.dirty = true
}

// highlightFrom re-highlights row at, then keeps sweeping forward while
// each row's open-comment state at its end differs from what it was.
func (d *Document) highlightFrom(at int) {
	for ; at < len(d.order); at++ {
		r := &d.slots[d.order[at]]
		open := highlight.Highlight(d.syntax, r.Render, r.HL, d.openBefore(at))
		changed := open != r.CommentOpen
		r.CommentOpen = open
		if !changed {
			return
		}
	}
}

// highlightAll re-highlights every row unconditionally.
func (d *Document) highlightAll() {
	for at, id := range d.order {
		r := &d.slots[id]
		r.CommentOpen = highlight.Highlight(d.syntax, r.Render, r.HL, d.openBefore(at))
	}
}

// openBefore returns the comment state seeding row at.
func (d *Document) openBefore(at int) bool {
	if at <= 0 {
		return false
	}
	return d.slots[d.order[at-1]].CommentOpen
}
