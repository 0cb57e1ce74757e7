// Package app ties the editor together: it owns the terminal, reads keys,
// dispatches them to the editing session and redraws the screen.
package app

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lemodoescoding/te/internal/config"
	"github.com/lemodoescoding/te/internal/engine"
	"github.com/lemodoescoding/te/internal/engine/buffer"
	"github.com/lemodoescoding/te/internal/input/key"
	"github.com/lemodoescoding/te/internal/project/watcher"
	"github.com/lemodoescoding/te/internal/renderer"
	"github.com/lemodoescoding/te/internal/renderer/backend"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
	"github.com/lemodoescoding/te/internal/renderer/statusline"
)

// Status bar messages.
const (
	msgHelp        = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"
	msgQuitWarning = "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit."
	msgSaved       = "%d bytes written to disk"
	msgSaveFailed  = "Can't save! I/O error: %s"
	msgSaveAborted = "Save aborted"
	msgChanged     = "File changed on disk"
	msgRemoved     = "File removed from disk"

	promptSaveAs = "Save as: %s (ESC to cancel)"
	promptSearch = "Search: %s (Use ESC/Arrows/Enter)"
)

// reservedRows are the status and message bars below the text.
const reservedRows = 2

// Application is one editor process.
type Application struct {
	opts    Options
	config  *config.Config
	syntax  *highlight.Database
	logger  *Logger
	logFile io.Closer
	session uuid.UUID

	editor   *engine.Editor
	renderer *renderer.Renderer
	filename string
	message  statusline.Message
	msgShown bool

	backend backend.Backend
	decoder *key.Decoder
	watcher *watcher.FileWatcher

	now     func() time.Time
	running bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means the default
	// location, where a missing file is not an error.
	ConfigPath string

	// Config replaces loading from ConfigPath.
	Config *config.Config

	// File is opened at startup when set.
	File string

	// Logger replaces the logger built from the log settings.
	Logger *Logger

	// Clock replaces time.Now.
	Clock func() time.Time
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Editor returns the editing session.
func (app *Application) Editor() *engine.Editor {
	return app.editor
}

// Filename returns the current file name, or "" for an unnamed document.
func (app *Application) Filename() string {
	return app.filename
}

// Message returns the current status message text.
func (app *Application) Message() string {
	return app.message.Text()
}

// Session returns the id logged with every line of this session.
func (app *Application) Session() uuid.UUID {
	return app.session
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

func (app *Application) doc() *buffer.Document {
	return app.editor.Doc()
}

// setMessage replaces the status message.
func (app *Application) setMessage(format string, args ...any) {
	app.message.Set(app.now(), format, args...)
}
