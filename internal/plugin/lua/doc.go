// Package lua runs the user's init script.
//
// The script runs once at startup in a sandboxed gopher-lua state: only
// the base, table, string and math libraries are open, and file loading
// functions are removed. A global "te" table is the script's only way to
// reach the editor:
//
//	te.set("editor.tab_stop", 4)
//	te.set("theme.keyword1", 93)
//
//	te.syntax{
//	    filetype = "py",
//	    filematch = {".py"},
//	    keywords = {"def", "return", "if", "else", "int|", "str|"},
//	    line_comment = "#",
//	    strings = true,
//	    numbers = true,
//	}
//
//	te.log("init done")
//
// Settings go through the same validation as the config file; an invalid
// value raises a Lua error that names the setting.
package lua
