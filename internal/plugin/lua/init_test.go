package lua

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lemodoescoding/te/internal/config"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
)

func TestRunnerSet(t *testing.T) {
	cfg := config.Default()
	r := NewRunner(cfg, highlight.NewDatabase())

	err := r.RunString(`
		te.set("editor.tab_stop", 4)
		te.set("editor.message_timeout", "1s")
		te.set("theme.keyword1", 93)
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if cfg.Editor.TabStop != 4 {
		t.Errorf("TabStop = %d, want 4", cfg.Editor.TabStop)
	}
	if cfg.Editor.MessageTimeout.Std().String() != "1s" {
		t.Errorf("MessageTimeout = %v", cfg.Editor.MessageTimeout.Std())
	}
	if cfg.Theme["keyword1"] != 93 {
		t.Errorf("Theme = %v", cfg.Theme)
	}
}

func TestRunnerSetInvalid(t *testing.T) {
	cfg := config.Default()
	r := NewRunner(cfg, highlight.NewDatabase())

	err := r.RunString(`te.set("editor.tab_stop", 99)`)
	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *ScriptError", err)
	}
	if !strings.Contains(err.Error(), "editor.tab_stop") {
		t.Errorf("error should name the setting: %v", err)
	}
	if cfg.Editor.TabStop != 8 {
		t.Errorf("TabStop changed to %d", cfg.Editor.TabStop)
	}
}

func TestRunnerSyntax(t *testing.T) {
	db := highlight.NewDatabase()
	r := NewRunner(config.Default(), db)

	err := r.RunString(`
		te.syntax{
			filetype = "py",
			filematch = {".py"},
			keywords = {"def", "return", "int|"},
			line_comment = "#",
			strings = true,
		}
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}

	p := db.Select("main.py")
	if p == nil {
		t.Fatal("profile not registered")
	}
	if p.FileType != "py" || p.LineComment != "#" {
		t.Errorf("profile = %+v", p)
	}
	if len(p.Keywords) != 3 {
		t.Errorf("Keywords = %v", p.Keywords)
	}
	if p.Flags != highlight.HighlightStrings {
		t.Errorf("Flags = %v", p.Flags)
	}
}

func TestRunnerSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"missing filetype", `te.syntax{filematch = {".x"}}`},
		{"bad list", `te.syntax{filetype = "x", keywords = "if"}`},
		{"bad list item", `te.syntax{filetype = "x", keywords = {1}}`},
		{"half block comment", `te.syntax{filetype = "x", block_comment_start = "/*"}`},
		{"bad flag", `te.syntax{filetype = "x", numbers = "yes"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := highlight.NewDatabase()
			before := db.Len()
			r := NewRunner(config.Default(), db)
			if err := r.RunString(tt.code); err == nil {
				t.Error("expected error")
			}
			if db.Len() != before {
				t.Error("invalid profile was registered")
			}
		})
	}
}

func TestRunnerLog(t *testing.T) {
	var lines []string
	r := NewRunner(config.Default(), highlight.NewDatabase(), WithLog(func(s string) {
		lines = append(lines, s)
	}))

	if err := r.RunString(`te.log("hello") print("world")`); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Errorf("log lines = %q", lines)
	}
}

func TestRunnerRunFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	r := NewRunner(cfg, highlight.NewDatabase())

	ran, err := r.RunFile(filepath.Join(dir, "init.lua"))
	if err != nil || ran {
		t.Errorf("missing file: ran=%v err=%v", ran, err)
	}
	ran, err = r.RunFile("")
	if err != nil || ran {
		t.Errorf("empty path: ran=%v err=%v", ran, err)
	}

	path := filepath.Join(dir, "init.lua")
	if err := os.WriteFile(path, []byte(`te.set("editor.quit_times", 1)`), 0644); err != nil {
		t.Fatal(err)
	}
	ran, err = r.RunFile(path)
	if err != nil || !ran {
		t.Fatalf("RunFile: ran=%v err=%v", ran, err)
	}
	if cfg.Editor.QuitTimes != 1 {
		t.Errorf("QuitTimes = %d, want 1", cfg.Editor.QuitTimes)
	}

	if err := os.WriteFile(path, []byte(`this is not lua`), 0644); err != nil {
		t.Fatal(err)
	}
	ran, err = r.RunFile(path)
	if err == nil || !ran {
		t.Errorf("bad script: ran=%v err=%v", ran, err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the script: %v", err)
	}
}
