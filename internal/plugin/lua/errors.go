package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")
)

// ScriptError wraps a failure raised while running a script.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	return "init script " + e.Path + ": " + e.Err.Error()
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
