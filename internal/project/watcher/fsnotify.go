package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// stamp identifies one version of the file's contents.
type stamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func (s stamp) equal(o stamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func statStamp(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// FileWatcher watches a single file using fsnotify.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	delay   time.Duration

	path string // absolute path of the file
	dir  string // watched directory
	last stamp  // version written or seen last

	pending Op
	timer   *time.Timer

	events chan Event
	errors chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching path. The file itself may not exist yet but its
// directory must.
func New(path string) (*FileWatcher, error) {
	return newWatcher(path, DefaultDelay)
}

func newWatcher(path string, delay time.Duration) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		delay:   delay,
		events:  make(chan Event, 16),
		errors:  make(chan error, 16),
		closeCh: make(chan struct{}),
	}

	if err := w.Retarget(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w.closedWg.Add(1)
	go w.processLoop()
	return w, nil
}

// Retarget switches the watch to path, as after "save as".
func (w *FileWatcher) Retarget(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrPathNotExist
		}
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		w.dir = dir
	}
	w.path = absPath
	w.pending = 0
	w.last = statStamp(absPath)
	return nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Sync records the file's current state as known. Call it after writing
// the file so the write is not reported back.
func (w *FileWatcher) Sync() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = statStamp(w.path)
}

// Events returns the event channel. It is closed by Close.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errors)
	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// handleFSEvent adds an event for the watched file to the pending window.
func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	w.pending |= op
	if w.timer == nil {
		w.timer = time.AfterFunc(w.delay, w.flush)
	} else {
		w.timer.Reset(w.delay)
	}
}

// flush delivers the coalesced event unless the file matches the last
// known version.
func (w *FileWatcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	op := w.pending
	w.pending = 0
	if w.closed || op == 0 {
		return
	}

	now := statStamp(w.path)
	if now.equal(w.last) {
		return
	}
	w.last = now

	select {
	case w.events <- Event{Path: w.path, Op: op, Timestamp: time.Now()}:
	default:
		// Channel full; the consumer has an undelivered change already.
	}
}

// convertOp converts fsnotify.Op to watcher.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}
