// Package key decodes raw terminal input into key events.
//
// The editor works with a small key set:
//
//   - Key: a special key (arrows, Home/End, PageUp/PageDown, Delete,
//     Backspace, Enter, Escape, Tab) or KeyRune for a byte of text
//   - Modifier: Ctrl for control bytes such as Ctrl-S, Alt for ESC-prefixed keys
//   - Event: a single decoded key press
//
// # Decoding
//
// A Decoder reads bytes from a terminal in raw mode and hands them to
// tcell's input processor, which recognizes the escape sequences of all
// common terminals. Keys outside the editor's set (function keys, mouse
// and paste reports) are dropped. An ESC that is not followed by more
// input before the read times out is the Escape key; ESC followed by a
// character is that character with Alt.
package key
