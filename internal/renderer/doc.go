// Package renderer produces the editor's screen frames.
//
// A frame is built in one buffer and written with a single Write call:
//
//	hide cursor, home
//	text rows (or "~" past the end, or the banner on an empty document)
//	status bar in reverse video
//	message bar
//	cursor position, show cursor
//
// Color escapes are emitted only when the highlight color changes, so long
// runs of one class cost a single escape.
//
// Usage:
//
//	r := renderer.New(renderer.DefaultOptions())
//	err := r.Draw(os.Stdout, renderer.Screen{Doc: doc, View: view, ...})
package renderer
