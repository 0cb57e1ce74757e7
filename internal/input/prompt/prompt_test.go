package prompt

import (
	"testing"

	"github.com/lemodoescoding/te/internal/input/key"
)

func typeText(p *Prompt, s string) {
	for i := 0; i < len(s); i++ {
		p.Handle(key.NewRuneEvent(rune(s[i]), key.ModNone))
	}
}

func TestPromptTyping(t *testing.T) {
	p := New("Save as: %s (ESC to cancel)")
	typeText(p, "main.c")

	if p.Input() != "main.c" {
		t.Errorf("Input() = %q", p.Input())
	}
	if p.Message() != "Save as: main.c (ESC to cancel)" {
		t.Errorf("Message() = %q", p.Message())
	}
	if p.Status() != Active || p.Done() {
		t.Errorf("status = %v", p.Status())
	}
}

func TestPromptEditing(t *testing.T) {
	tests := []struct {
		name   string
		events []key.Event
		want   string
	}{
		{"backspace", []key.Event{key.NewRuneEvent('a', key.ModNone), key.NewRuneEvent('b', key.ModNone), key.NewSpecialEvent(key.KeyBackspace)}, "a"},
		{"delete", []key.Event{key.NewRuneEvent('a', key.ModNone), key.NewSpecialEvent(key.KeyDelete)}, ""},
		{"backspace on empty", []key.Event{key.NewSpecialEvent(key.KeyBackspace)}, ""},
		{"ctrl ignored", []key.Event{key.Ctrl('s'), key.NewRuneEvent('x', key.ModNone)}, "x"},
		{"arrows ignored", []key.Event{key.NewSpecialEvent(key.KeyLeft), key.NewRuneEvent('y', key.ModNone)}, "y"},
		{"high bytes ignored", []key.Event{key.NewRuneEvent(0xe9, key.ModNone)}, ""},
		{"tab ignored", []key.Event{key.NewSpecialEvent(key.KeyTab)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("%s")
			for _, ev := range tt.events {
				p.Handle(ev)
			}
			if p.Input() != tt.want {
				t.Errorf("Input() = %q, want %q", p.Input(), tt.want)
			}
		})
	}
}

func TestPromptAccept(t *testing.T) {
	p := New("%s")

	// Enter on empty input keeps the prompt open.
	if s := p.Handle(key.NewSpecialEvent(key.KeyEnter)); s != Active {
		t.Fatalf("Enter on empty input = %v, want active", s)
	}

	typeText(p, "foo")
	if s := p.Handle(key.NewSpecialEvent(key.KeyEnter)); s != Accepted {
		t.Fatalf("Enter = %v, want accepted", s)
	}
	if !p.Done() {
		t.Error("accepted prompt should be done")
	}

	// Further input is ignored.
	typeText(p, "bar")
	if p.Input() != "foo" || p.Status() != Accepted {
		t.Errorf("finished prompt changed: %q %v", p.Input(), p.Status())
	}
}

func TestPromptCancel(t *testing.T) {
	p := New("%s")
	typeText(p, "abc")
	if s := p.Handle(key.NewSpecialEvent(key.KeyEscape)); s != Canceled {
		t.Fatalf("Escape = %v, want canceled", s)
	}
	if s := p.Handle(key.NewSpecialEvent(key.KeyEnter)); s != Canceled {
		t.Errorf("status changed after cancel: %v", s)
	}
}

func TestStatusString(t *testing.T) {
	if Active.String() != "active" || Accepted.String() != "accepted" || Canceled.String() != "canceled" {
		t.Error("status names wrong")
	}
	if Status(9).String() != "Status(9)" {
		t.Errorf("unknown status = %q", Status(9).String())
	}
}
