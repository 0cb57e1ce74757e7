// Package watcher reports external changes to the file being edited.
//
// The parent directory is watched rather than the file itself so the
// watch survives editors (including this one) that save by renaming a
// temporary file over the original. Bursts of events are coalesced, and
// changes whose size and modification time match the last Sync are
// treated as the editor's own writes and dropped.
package watcher

import (
	"errors"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// DefaultDelay is how long events are coalesced before delivery.
const DefaultDelay = 100 * time.Millisecond

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case OpChmod:
		return "CHMOD"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is one coalesced change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is every operation seen during the coalescing window.
	Op Op

	// Timestamp is when the event was delivered.
	Timestamp time.Time
}

// Gone reports whether the file no longer exists at Path.
func (e Event) Gone() bool {
	return (e.Op.Has(OpRemove) || e.Op.Has(OpRename)) && !e.Op.Has(OpCreate)
}
