package lua

import (
	"errors"
	"io/fs"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/lemodoescoding/te/internal/config"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
)

// ModuleName is the global the editor API is installed under.
const ModuleName = "te"

// Settings receives te.set calls. *config.Config satisfies it.
type Settings interface {
	Set(path string, value any) error
}

// Registry receives te.syntax calls. *highlight.Database satisfies it.
type Registry interface {
	Register(p *highlight.Profile)
}

// Runner runs init scripts against a settings target and a syntax registry.
type Runner struct {
	settings Settings
	registry Registry
	log      func(string)
	timeout  time.Duration
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLog sends te.log and print output to fn.
func WithLog(fn func(string)) RunnerOption {
	return func(r *Runner) {
		r.log = fn
	}
}

// WithTimeout bounds the script's run time.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

// NewRunner creates a runner.
func NewRunner(settings Settings, registry Registry, opts ...RunnerOption) *Runner {
	r := &Runner{
		settings: settings,
		registry: registry,
		log:      func(string) {},
		timeout:  DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile runs the script at path. A missing file is not an error and
// reports ran == false.
func (r *Runner) RunFile(path string) (ran bool, err error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &ScriptError{Path: path, Err: err}
	}

	s := r.newState()
	defer s.Close()
	if err := s.DoFile(path); err != nil {
		return true, &ScriptError{Path: path, Err: err}
	}
	return true, nil
}

// RunString runs code as an init script.
func (r *Runner) RunString(code string) error {
	s := r.newState()
	defer s.Close()
	if err := s.DoString(code); err != nil {
		return &ScriptError{Path: "<string>", Err: err}
	}
	return nil
}

func (r *Runner) newState() *State {
	s := NewState(WithExecutionTimeout(r.timeout))
	s.Sandbox().SetPrint(r.log)

	s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"set":    r.luaSet,
		"syntax": r.luaSyntax,
		"log":    r.luaLog,
	})
	return s
}

// luaSet implements te.set(path, value).
func (r *Runner) luaSet(L *lua.LState) int {
	path := L.CheckString(1)
	value := ToGoValue(L.CheckAny(2))
	if value == nil {
		L.ArgError(2, "value must be a boolean, number, string or table")
		return 0
	}
	if err := r.settings.Set(path, value); err != nil {
		L.RaiseError("te.set(%q): %s", path, err.Error())
	}
	return 0
}

// luaSyntax implements te.syntax{...}.
func (r *Runner) luaSyntax(L *lua.LState) int {
	t := L.CheckTable(1)
	sc, err := syntaxFromTable(t)
	if err != nil {
		L.RaiseError("te.syntax: %s", err.Error())
		return 0
	}
	if sc.FileType == "" {
		L.RaiseError("te.syntax: filetype is required")
		return 0
	}
	if (sc.BlockCommentStart == "") != (sc.BlockCommentEnd == "") {
		L.RaiseError("te.syntax: block_comment_start and block_comment_end must be set together")
		return 0
	}
	r.registry.Register(sc.Profile())
	return 0
}

func (r *Runner) luaLog(L *lua.LState) int {
	r.log(L.CheckString(1))
	return 0
}

func syntaxFromTable(t *lua.LTable) (config.SyntaxConfig, error) {
	var sc config.SyntaxConfig
	var err error

	strs := []struct {
		key string
		dst *string
	}{
		{"filetype", &sc.FileType},
		{"line_comment", &sc.LineComment},
		{"block_comment_start", &sc.BlockCommentStart},
		{"block_comment_end", &sc.BlockCommentEnd},
	}
	for _, f := range strs {
		if *f.dst, err = tableString(t, f.key); err != nil {
			return sc, err
		}
	}

	lists := []struct {
		key string
		dst *[]string
	}{
		{"filematch", &sc.FileMatch},
		{"keywords", &sc.Keywords},
		{"types", &sc.Types},
	}
	for _, f := range lists {
		if *f.dst, err = tableStrings(t, f.key); err != nil {
			return sc, err
		}
	}

	if sc.Numbers, err = tableBool(t, "numbers"); err != nil {
		return sc, err
	}
	if sc.Strings, err = tableBool(t, "strings"); err != nil {
		return sc, err
	}
	return sc, nil
}
