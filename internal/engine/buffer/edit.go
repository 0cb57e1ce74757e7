package buffer

// InsertRow inserts a new row holding a copy of text at position at.
// Valid positions are 0 through NumRows; anything else is a no-op.
func (d *Document) InsertRow(at int, text []byte) {
	if at < 0 || at > len(d.order) {
		return
	}

	id := d.allocSlot()
	d.slots[id] = Row{
		Raw: append([]byte(nil), text...),
		// Start from the state the following row was seeded with, so the
		// sweep continues exactly when this row changes that seed.
		CommentOpen: d.openBefore(at),
	}

	d.order = append(d.order, 0)
	copy(d.order[at+1:], d.order[at:])
	d.order[at] = id
	d.reindex(at)

	d.update(at)
}

// AppendRow inserts text as a new last row.
func (d *Document) AppendRow(text []byte) {
	d.InsertRow(len(d.order), text)
}

// DeleteRow removes the row at position at. Out-of-range positions are a
// no-op.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.order) {
		return
	}

	id := d.order[at]
	d.order = append(d.order[:at], d.order[at+1:]...)
	d.releaseSlot(id)
	d.reindex(at)

	// The row that moved into at has a new predecessor.
	if at < len(d.order) {
		d.highlightFrom(at)
	}
	d.dirty = true
}

// InsertChar inserts c into row at column at. Columns outside the row
// clamp to the row end.
func (d *Document) InsertChar(row, at int, c byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	if at < 0 || at > len(r.Raw) {
		at = len(r.Raw)
	}
	r.Raw = append(r.Raw, 0)
	copy(r.Raw[at+1:], r.Raw[at:])
	r.Raw[at] = c
	d.update(row)
}

// DeleteChar removes the byte at column at of row. Columns outside the
// row are a no-op.
func (d *Document) DeleteChar(row, at int) {
	r := d.Row(row)
	if r == nil || at < 0 || at >= len(r.Raw) {
		return
	}
	r.Raw = append(r.Raw[:at], r.Raw[at+1:]...)
	d.update(row)
}

// AppendText appends text to the end of row.
func (d *Document) AppendText(row int, text []byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	r.Raw = append(r.Raw, text...)
	d.update(row)
}

// SplitRow moves the bytes of row from column at onwards into a new row
// inserted directly below it. Columns outside the row clamp to its ends.
func (d *Document) SplitRow(row, at int) {
	r := d.Row(row)
	if r == nil {
		return
	}
	if at < 0 {
		at = 0
	}
	if at > len(r.Raw) {
		at = len(r.Raw)
	}

	suffix := append([]byte(nil), r.Raw[at:]...)
	d.InsertRow(row+1, suffix)

	// InsertRow may have grown the arena.
	r = d.Row(row)
	r.Raw = r.Raw[:at]
	d.update(row)
}

// JoinWithPrevious appends row to the row above it and deletes row. It
// returns the column in the previous row where the joined text begins.
// Row 0 and out-of-range rows cannot be joined.
func (d *Document) JoinWithPrevious(row int) (int, bool) {
	if row <= 0 || row >= len(d.order) {
		return 0, false
	}
	prevLen := len(d.Row(row - 1).Raw)
	text := d.Row(row).Raw
	d.AppendText(row-1, text)
	d.DeleteRow(row)
	return prevLen, true
}
