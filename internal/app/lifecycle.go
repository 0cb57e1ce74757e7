package app

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/lemodoescoding/te/internal/input/key"
	"github.com/lemodoescoding/te/internal/project/watcher"
	"github.com/lemodoescoding/te/internal/renderer"
	"github.com/lemodoescoding/te/internal/renderer/backend"
)

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// Run takes over the terminal and processes keys until the user quits.
// A clean quit returns nil.
func (app *Application) Run() (err error) {
	if app.running {
		return ErrAlreadyRunning
	}
	if app.backend == nil {
		return ErrNoBackend
	}
	app.running = true
	defer func() { app.running = false }()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.backend.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("panic: %v", r)
			_ = renderer.Clear(app.backend)
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()

	if err := app.resize(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	app.decoder = key.NewDecoder(app.backend)
	app.startWatcher()
	app.setMessage(msgHelp)

	for {
		if err := app.refresh(); err != nil {
			return NewOperationError("draw", "", err)
		}
		ev, err := app.readKey()
		if err != nil {
			return NewOperationError("read", "", err)
		}
		if err := app.processKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return renderer.Clear(app.backend)
			}
			return err
		}
	}
}

// Shutdown releases everything Run and New acquired.
func (app *Application) Shutdown() {
	if app.backend != nil {
		app.backend.Shutdown()
	}
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.WithComponent("watcher").Warn("close: %v", err)
		}
		app.watcher = nil
	}
	app.logger.Info("shutdown")
	app.closeLog()
}

// resize fits the view to the terminal, leaving room for the two bars.
func (app *Application) resize() error {
	rows, cols, err := app.backend.Size()
	if err != nil {
		return err
	}
	if rows <= reservedRows || cols <= 0 {
		return fmt.Errorf("terminal too small: %dx%d", rows, cols)
	}
	app.editor.View().Resize(rows-reservedRows, cols)
	app.logger.Debug("screen %dx%d", rows, cols)
	return nil
}

// refresh draws one frame.
func (app *Application) refresh() error {
	cur := app.editor.Cursor()
	app.msgShown = app.message.Visible(app.now(), app.config.Editor.MessageTimeout.Std()) != ""
	return app.renderer.Draw(app.backend, renderer.Screen{
		Doc:       app.doc(),
		View:      app.editor.View(),
		Filename:  app.filename,
		Message:   &app.message,
		CursorRow: cur.Row,
		CursorCol: cur.Col,
	})
}

// readKey blocks until a key arrives. Between timed-out reads it handles
// window size changes, file watcher events and message expiry.
func (app *Application) readKey() (key.Event, error) {
	for {
		ev, ok, err := app.decoder.ReadEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return key.Event{}, fmt.Errorf("input closed: %w", err)
			}
			return key.Event{}, err
		}
		if ok {
			return ev, nil
		}
		if app.idle() {
			if err := app.refresh(); err != nil {
				return key.Event{}, err
			}
		}
	}
}

// idle does background work and reports whether the screen needs a redraw.
func (app *Application) idle() bool {
	redraw := false

	select {
	case <-app.backend.Resized():
		if err := app.resize(); err != nil {
			app.logger.Warn("resize: %v", err)
		} else {
			redraw = true
		}
	default:
	}

	if app.watcher != nil {
		select {
		case ev := <-app.watcher.Events():
			app.fileChanged(ev)
			redraw = true
		case err := <-app.watcher.Errors():
			app.logger.WithComponent("watcher").Warn("%v", err)
		default:
		}
	}

	if app.msgShown && app.message.Visible(app.now(), app.config.Editor.MessageTimeout.Std()) == "" {
		redraw = true
	}
	return redraw
}

func (app *Application) fileChanged(ev watcher.Event) {
	app.logger.WithComponent("watcher").Info("%s %s", ev.Path, ev.Op)
	if ev.Gone() {
		app.setMessage(msgRemoved)
		return
	}
	app.setMessage(msgChanged)
}
