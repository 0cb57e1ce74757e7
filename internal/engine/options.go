package engine

// DefaultQuitTimes is how many extra Ctrl-Q presses quitting a modified
// document takes.
const DefaultQuitTimes = 3

// Option configures an Editor during creation.
type Option func(*Editor)

// WithQuitTimes sets how many confirmations quitting a dirty document
// needs. Zero quits immediately.
func WithQuitTimes(n int) Option {
	return func(e *Editor) {
		if n >= 0 {
			e.quit = NewQuitGuard(n)
		}
	}
}
