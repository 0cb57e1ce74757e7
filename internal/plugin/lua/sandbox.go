package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// removedGlobals are base functions that load code from disk or strings.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// Sandbox restricts what a script can reach.
type Sandbox struct {
	L     *lua.LState
	print func(string)
}

// NewSandbox creates a sandbox for L. Output from print is discarded
// until SetPrint is called.
func NewSandbox(L *lua.LState) *Sandbox {
	return &Sandbox{L: L, print: func(string) {}}
}

// Install removes the loading functions and replaces print.
func (s *Sandbox) Install() {
	for _, name := range removedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(s.luaPrint))
}

// SetPrint routes print output to fn. The terminal is in raw mode while a
// script runs, so output never goes to stdout.
func (s *Sandbox) SetPrint(fn func(string)) {
	if fn == nil {
		fn = func(string) {}
	}
	s.print = fn
}

func (s *Sandbox) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	s.print(strings.Join(parts, "\t"))
	return 0
}
