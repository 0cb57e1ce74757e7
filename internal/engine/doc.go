// Package engine is the editing session: a document, the cursor over it
// and the viewport showing it.
//
// Every cursor movement and edit the input layer can request is an Editor
// method. Edits go through the row store in package buffer, which keeps
// rendering and highlighting current; the Editor keeps the cursor inside
// the document and its render column in sync.
//
// # Basic Usage
//
//	ed := engine.New(doc, viewport.NewViewport(rows, cols))
//	ed.InsertChar('x')
//	ed.InsertNewline()
//	ed.DeleteChar()
//	ed.Move(key.KeyUp)
package engine
