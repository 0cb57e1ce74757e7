// Package buffer provides the row store for the editor engine.
//
// A Document is an ordered sequence of rows. Each row keeps its raw bytes,
// the rendered form with tabs expanded, and one highlight class per
// rendered byte. Rows live in an arena of slots; the document order is a
// separate slice of slot ids, so inserting or deleting a row never moves
// the other rows' storage.
//
// Every mutation re-renders the touched row, re-highlights it, marks the
// document dirty and reindexes the rows that follow. Highlighting runs as a
// forward sweep: when a row's open-comment state at its end changes, the
// next row is re-highlighted, and the sweep stops at the first row whose
// state is unchanged.
//
// Positions are clamped rather than rejected. An out-of-range row index
// makes the call a no-op.
//
// A Document is not safe for concurrent use; the editor drives it from a
// single goroutine.
//
// Basic usage:
//
//	doc := buffer.New(buffer.WithTabWidth(4))
//	doc.InsertRow(0, []byte("int main() {"))
//	doc.InsertChar(0, 0, '/')
//	text := doc.FlatText()
package buffer
