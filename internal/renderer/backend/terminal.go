//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package backend

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// readTimeout is the raw-mode read timeout in tenths of a second.
const readTimeout = 1

// Terminal implements Backend on a POSIX terminal in raw mode.
type Terminal struct {
	in  *os.File
	out *os.File

	mu      sync.Mutex
	state   *term.State
	sigs    chan os.Signal
	resized chan struct{}
	done    chan struct{}
}

// NewTerminal creates a terminal backend reading in and writing out.
func NewTerminal(in, out *os.File) *Terminal {
	return &Terminal{
		in:      in,
		out:     out,
		resized: make(chan struct{}, 1),
	}
}

// Init switches the input to raw mode with timed reads and starts
// watching for window size changes.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state

	tio, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		_ = term.Restore(fd, state)
		return fmt.Errorf("get termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = readTimeout
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, tio); err != nil {
		_ = term.Restore(fd, state)
		return fmt.Errorf("set termios: %w", err)
	}

	t.sigs = make(chan os.Signal, 1)
	t.done = make(chan struct{})
	signal.Notify(t.sigs, unix.SIGWINCH)
	go t.watchResize(t.sigs, t.done)

	return nil
}

func (t *Terminal) watchResize(sigs <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case <-sigs:
			notify(t.resized)
		case <-done:
			return
		}
	}
}

// Shutdown restores the original terminal mode.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sigs != nil {
		signal.Stop(t.sigs)
		close(t.done)
		t.sigs = nil
	}
	if t.state != nil {
		_ = term.Restore(int(t.in.Fd()), t.state)
		t.state = nil
	}
}

// Size asks the kernel for the window size and falls back to a cursor
// position report when that fails.
func (t *Terminal) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	return querySize(t)
}

func (t *Terminal) Resized() <-chan struct{} {
	return t.resized
}

// Read reads raw input. It returns 0, nil when the read timeout expires
// with no input.
func (t *Terminal) Read(p []byte) (int, error) {
	n, err := unix.Read(int(t.in.Fd()), p)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
