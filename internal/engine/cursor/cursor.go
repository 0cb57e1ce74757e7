package cursor

import "fmt"

// Lines is the view of the document that movement needs.
type Lines interface {
	NumRows() int
	RowLen(at int) int
}

// Cursor is an insertion point in character coordinates.
// Cursor is an immutable value type.
type Cursor struct {
	Row int
	Col int
}

// New creates a cursor at row, col. Negative values clamp to 0.
func New(row, col int) Cursor {
	return Cursor{Row: max(row, 0), Col: max(col, 0)}
}

// String returns "row:col", 0-based.
func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// Left moves one column left, wrapping to the end of the previous row.
func (c Cursor) Left(l Lines) Cursor {
	if c.Col > 0 {
		c.Col--
	} else if c.Row > 0 {
		c.Row--
		c.Col = l.RowLen(c.Row)
	}
	return c
}

// Right moves one column right, wrapping to the start of the next row.
func (c Cursor) Right(l Lines) Cursor {
	if c.Row >= l.NumRows() {
		return c
	}
	n := l.RowLen(c.Row)
	if c.Col < n {
		c.Col++
	} else if c.Col == n {
		c.Row++
		c.Col = 0
	}
	return c
}

// Up moves one row up and clamps the column to the new row.
func (c Cursor) Up(l Lines) Cursor {
	if c.Row > 0 {
		c.Row--
	}
	return c.Clamp(l)
}

// Down moves one row down, at most to the row past the end, and clamps
// the column to the new row.
func (c Cursor) Down(l Lines) Cursor {
	if c.Row < l.NumRows() {
		c.Row++
	}
	return c.Clamp(l)
}

// Home moves to column 0.
func (c Cursor) Home() Cursor {
	c.Col = 0
	return c
}

// End moves to the end of the current row.
func (c Cursor) End(l Lines) Cursor {
	c.Col = l.RowLen(c.Row)
	return c
}

// Clamp keeps the row within [0, NumRows] and the column within the row.
func (c Cursor) Clamp(l Lines) Cursor {
	c.Row = min(max(c.Row, 0), l.NumRows())
	c.Col = min(max(c.Col, 0), l.RowLen(c.Row))
	return c
}
