// Package config loads and validates the editor's settings.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. init.lua (te.set)       │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← TE_TAB_STOP, TE_EDITOR_QUIT_TIMES, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/te/config.toml or -config
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The init script layer is applied by package lua through Config.Set.
//
// # Configuration Files
//
//	[editor]
//	tab_stop = 4
//	quit_times = 3
//	message_timeout = "5s"
//	watch_file = true
//
//	[log]
//	level = "debug"
//	file = "/tmp/te.log"
//
//	[theme]
//	keyword1 = 93
//	comment = 90
//
//	[[syntax]]
//	filetype = "py"
//	filematch = [".py"]
//	keywords = ["def", "return", "int|"]
//	line_comment = "#"
//	numbers = true
//	strings = true
//
// # Basic Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	doc := buffer.New(buffer.WithTabWidth(cfg.Editor.TabStop))
//
// # Error Handling
//
//   - ErrFileNotFound: an explicitly requested file doesn't exist
//   - ErrUnknownSetting: a key that no setting answers to
//   - ErrTypeMismatch: a value of the wrong type
//   - ErrValidationFailed: a value out of range (see ValidationError)
//   - loader.ParseError: the TOML file is malformed
package config
