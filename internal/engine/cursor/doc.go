// Package cursor provides the editor's text cursor.
//
// A Cursor is an immutable (row, column) value in character coordinates.
// Movement methods take the document's row lengths through the Lines
// interface and return a new cursor. The cursor may sit one row past the
// last row, where new text is appended.
//
// Basic usage:
//
//	c := cursor.New(0, 0)
//	c = c.Down(doc).End(doc)
package cursor
