// Package viewport maps document coordinates to screen coordinates.
package viewport

// Viewport represents the visible portion of the document: the text area
// of the screen, excluding the status and message bars.
type Viewport struct {
	// First visible row and render column.
	rowOffset int
	colOffset int

	// Size of the text area in cells.
	rows int
	cols int
}

// NewViewport creates a viewport with the given text area size.
// Dimensions are clamped to a minimum of 1.
func NewViewport(rows, cols int) *Viewport {
	v := &Viewport{}
	v.Resize(rows, cols)
	return v
}

// Rows returns the number of text rows on screen.
func (v *Viewport) Rows() int {
	return v.rows
}

// Cols returns the number of text columns on screen.
func (v *Viewport) Cols() int {
	return v.cols
}

// RowOffset returns the first visible document row.
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// Resize updates the text area size.
func (v *Viewport) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	v.rows = rows
	v.cols = cols
}

// SetRowOffset moves the first visible row. The next Scroll pulls it back
// so the cursor is visible.
func (v *Viewport) SetRowOffset(row int) {
	if row < 0 {
		row = 0
	}
	v.rowOffset = row
}

// Scroll adjusts the offsets so that document row cy and render column rx
// fall inside the visible area.
func (v *Viewport) Scroll(cy, rx int) {
	if cy < v.rowOffset {
		v.rowOffset = cy
	}
	if cy >= v.rowOffset+v.rows {
		v.rowOffset = cy - v.rows + 1
	}
	if rx < v.colOffset {
		v.colOffset = rx
	}
	if rx >= v.colOffset+v.cols {
		v.colOffset = rx - v.cols + 1
	}

	if v.rowOffset < 0 {
		v.rowOffset = 0
	}
	if v.colOffset < 0 {
		v.colOffset = 0
	}
}

// ScreenPosition converts document coordinates to 0-based screen cell
// coordinates within the text area.
func (v *Viewport) ScreenPosition(cy, rx int) (row, col int) {
	return cy - v.rowOffset, rx - v.colOffset
}
