package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const waitFor = 2 * time.Second

func newTestWatcher(t *testing.T, path string) *FileWatcher {
	t.Helper()
	w, err := newWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func expectEvent(t *testing.T, w *FileWatcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func expectNoEvent(t *testing.T, w *FileWatcher) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
		{OpChmod, "CHMOD"},
		{OpCreate | OpWrite, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
	if !(OpCreate | OpWrite).Has(OpWrite) {
		t.Error("Has(OpWrite) = false")
	}
}

func TestEventGone(t *testing.T) {
	tests := []struct {
		op   Op
		want bool
	}{
		{OpRemove, true},
		{OpRename, true},
		{OpWrite, false},
		{OpRename | OpCreate, false},
	}
	for _, tt := range tests {
		if got := (Event{Op: tt.op}).Gone(); got != tt.want {
			t.Errorf("Event{%v}.Gone() = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New("/nonexistent/dir/file.txt")
	if err != ErrPathNotExist {
		t.Errorf("err = %v, want ErrPathNotExist", err)
	}
}

func TestExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w := newTestWatcher(t, path)

	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ev := expectEvent(t, w)
	if ev.Path != w.Path() {
		t.Errorf("Path = %q, want %q", ev.Path, w.Path())
	}
	if !ev.Op.Has(OpWrite) && !ev.Op.Has(OpCreate) {
		t.Errorf("Op = %v", ev.Op)
	}
	if ev.Gone() {
		t.Error("write reported as gone")
	}
}

func TestOwnWriteIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w := newTestWatcher(t, path)

	// Save the way the editor does: temp file renamed over the original.
	tmp := filepath.Join(dir, ".a.txt.tmp")
	if err := os.WriteFile(tmp, []byte("saved\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	w.Sync()

	expectNoEvent(t, w)
}

func TestOtherFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	w := newTestWatcher(t, path)

	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	expectNoEvent(t, w)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	w := newTestWatcher(t, path)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	ev := expectEvent(t, w)
	if !ev.Gone() {
		t.Errorf("Op = %v, want removal", ev.Op)
	}
}

func TestRetarget(t *testing.T) {
	first := filepath.Join(t.TempDir(), "a.txt")
	second := filepath.Join(t.TempDir(), "b.txt")
	w := newTestWatcher(t, first)

	if err := w.Retarget(second); err != nil {
		t.Fatalf("Retarget error = %v", err)
	}
	if w.Path() != second {
		t.Errorf("Path = %q, want %q", w.Path(), second)
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	expectNoEvent(t, w)

	if err := os.WriteFile(second, []byte("y"), 0644); err != nil {
		t.Fatal(err)
	}
	expectEvent(t, w)
}

func TestClose(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Error("events channel should be closed")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
	if err := w.Retarget("/tmp/x"); err != ErrWatcherClosed {
		t.Errorf("Retarget after Close = %v, want ErrWatcherClosed", err)
	}
}
