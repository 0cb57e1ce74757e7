// Package backend provides the terminal the editor runs in.
//
// A backend is a byte pipe with a size. Reads are timed: when no input
// arrives within a short interval Read returns 0, nil so the caller can do
// periodic work such as expiring status messages.
package backend

import (
	"errors"
	"io"
	"sync"
)

// ErrNotTerminal is returned by Init when input is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Backend defines the interface for terminal backends.
type Backend interface {
	io.ReadWriter

	// Init prepares the backend for use. Must be called before any other
	// methods.
	Init() error

	// Shutdown restores the terminal state. Safe to call more than once.
	Shutdown()

	// Size returns the terminal dimensions in cells.
	Size() (rows, cols int, err error)

	// Resized delivers a value each time the terminal changes size.
	Resized() <-chan struct{}
}

// NullBackend is an in-memory backend for tests. Input is queued with
// Feed; output accumulates and is read back with Output.
type NullBackend struct {
	mu      sync.Mutex
	rows    int
	cols    int
	input   []byte
	output  []byte
	resized chan struct{}
	closed  bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(rows, cols int) *NullBackend {
	return &NullBackend{
		rows:    rows,
		cols:    cols,
		resized: make(chan struct{}, 1),
	}
}

func (b *NullBackend) Init() error {
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// Closed reports whether Shutdown has been called.
func (b *NullBackend) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func (b *NullBackend) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rows, b.cols, nil
}

func (b *NullBackend) Resized() <-chan struct{} {
	return b.resized
}

// Resize changes the reported size and signals a resize.
func (b *NullBackend) Resize(rows, cols int) {
	b.mu.Lock()
	b.rows, b.cols = rows, cols
	b.mu.Unlock()
	notify(b.resized)
}

// Feed queues bytes for Read.
func (b *NullBackend) Feed(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.input = append(b.input, p...)
}

// Read returns queued input, or io.EOF once the queue is empty.
func (b *NullBackend) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.input) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.input)
	b.input = b.input[n:]
	return n, nil
}

func (b *NullBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.output = append(b.output, p...)
	return len(p), nil
}

// Output returns a copy of everything written so far.
func (b *NullBackend) Output() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.output...)
}

// notify does a non-blocking send on a one-slot channel.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
