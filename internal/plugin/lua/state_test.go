package lua

import (
	"errors"
	"testing"
	"time"

	glua "github.com/yuin/gopher-lua"
)

func TestStateDoString(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`x = 1 + 1`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if v := state.GetGlobal("x"); v != glua.LNumber(2) {
		t.Errorf("x = %v, want 2", v)
	}

	if err := state.DoString(`error("boom")`); err == nil {
		t.Error("expected error from error()")
	}
}

func TestStateSandbox(t *testing.T) {
	state := NewState()
	defer state.Close()

	for _, name := range []string{"io", "os", "debug", "dofile", "loadfile", "load", "loadstring", "require"} {
		if v := state.GetGlobal(name); v != glua.LNil {
			t.Errorf("%s should not be available, got %s", name, v.Type())
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		if v := state.GetGlobal(name); v == glua.LNil {
			t.Errorf("%s should be available", name)
		}
	}
}

func TestStatePrintCaptured(t *testing.T) {
	state := NewState()
	defer state.Close()

	var got []string
	state.Sandbox().SetPrint(func(s string) { got = append(got, s) })

	if err := state.DoString(`print("a", 1, true)`); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "a\t1\ttrue" {
		t.Errorf("print output = %q", got)
	}
}

func TestStateTimeout(t *testing.T) {
	state := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer state.Close()

	err := state.DoString(`while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("err = %v, want ErrExecutionTimeout", err)
	}
}

func TestStateClosed(t *testing.T) {
	state := NewState()
	if err := state.Close(); err != nil {
		t.Fatal(err)
	}
	if err := state.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("err = %v, want ErrStateClosed", err)
	}
	if err := state.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestToGoValue(t *testing.T) {
	state := NewState()
	defer state.Close()

	if err := state.DoString(`
		n = 4
		f = 1.5
		s = "x"
		b = true
		list = {"a", "b"}
		map = {k = 1}
	`); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want any
	}{
		{"n", int64(4)},
		{"f", 1.5},
		{"s", "x"},
		{"b", true},
		{"missing", nil},
	}
	for _, tt := range tests {
		if got := ToGoValue(state.GetGlobal(tt.name)); got != tt.want {
			t.Errorf("ToGoValue(%s) = %v (%T), want %v", tt.name, got, got, tt.want)
		}
	}

	list, ok := ToGoValue(state.GetGlobal("list")).([]any)
	if !ok || len(list) != 2 || list[0] != "a" {
		t.Errorf("list = %#v", list)
	}
	m, ok := ToGoValue(state.GetGlobal("map")).(map[string]any)
	if !ok || m["k"] != int64(1) {
		t.Errorf("map = %#v", m)
	}
}
