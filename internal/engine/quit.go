package engine

// QuitGuard requires repeated quit requests before a modified document
// may be abandoned.
type QuitGuard struct {
	times int
	left  int
}

// NewQuitGuard creates a guard that needs times extra requests.
func NewQuitGuard(times int) *QuitGuard {
	return &QuitGuard{times: times, left: times}
}

// Request registers a quit request. It reports whether quitting may go
// ahead and, when it may not, how many more requests are needed.
func (g *QuitGuard) Request(dirty bool) (ok bool, remaining int) {
	if !dirty || g.left <= 0 {
		return true, 0
	}
	remaining = g.left
	g.left--
	return false, remaining
}

// Reset restores the full count. Any key other than quit calls this.
func (g *QuitGuard) Reset() {
	g.left = g.times
}
