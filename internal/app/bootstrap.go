package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lemodoescoding/te/internal/config"
	"github.com/lemodoescoding/te/internal/engine"
	"github.com/lemodoescoding/te/internal/engine/buffer"
	"github.com/lemodoescoding/te/internal/plugin/lua"
	"github.com/lemodoescoding/te/internal/project/watcher"
	"github.com/lemodoescoding/te/internal/renderer"
	"github.com/lemodoescoding/te/internal/renderer/highlight"
	"github.com/lemodoescoding/te/internal/renderer/viewport"
)

// New creates an Application: it loads settings, runs the init script
// and opens opts.File. The terminal is not touched until Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		session: uuid.New(),
		now:     opts.Clock,
	}
	if app.now == nil {
		app.now = time.Now
	}

	if err := app.bootstrap(); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Settings
	cfg := app.opts.Config
	if cfg == nil {
		var loadOpts []config.LoadOption
		if app.opts.ConfigPath != "" {
			loadOpts = append(loadOpts, config.Required())
		}
		var err error
		cfg, err = config.Load(app.opts.ConfigPath, loadOpts...)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	app.config = cfg

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	app.logger.Info("starting")
	if cfg.Source != "" {
		app.logger.Debug("config loaded from %s", cfg.Source)
	}

	// 3. Syntax profiles and init script
	app.syntax = highlight.NewDatabase()
	cfg.RegisterSyntax(app.syntax)
	if err := app.runInitScript(); err != nil {
		return &InitError{Component: "init script", Err: err}
	}
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))

	// 4. Renderer
	theme, err := cfg.HighlightTheme()
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	app.renderer = renderer.New(renderer.Options{
		Theme:          theme,
		Banner:         renderer.DefaultOptions().Banner,
		MessageTimeout: cfg.Editor.MessageTimeout.Std(),
	})
	app.renderer.SetClock(app.now)

	// 5. Editing session; the real size is known once the terminal is up.
	doc := buffer.New(buffer.WithTabWidth(cfg.Editor.TabStop))
	app.editor = engine.New(doc, viewport.NewViewport(0, 0),
		engine.WithQuitTimes(cfg.Editor.QuitTimes))

	// 6. File
	if app.opts.File != "" {
		if err := app.open(app.opts.File); err != nil {
			return err
		}
	}
	return nil
}

func (app *Application) initLogger() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger.WithField("session", app.session)
		return nil
	}

	lc := DefaultLoggerConfig()
	lc.Level = ParseLogLevel(app.config.Log.Level)
	if path := app.config.Log.File; path != "" {
		f, err := OpenLogFile(path)
		if err != nil {
			return err
		}
		lc.Output = f
		app.logFile = f
	}
	app.logger = NewLogger(lc).WithField("session", app.session)
	return nil
}

func (app *Application) runInitScript() error {
	path := app.config.InitScriptPath()
	log := app.logger.WithComponent("lua")
	runner := lua.NewRunner(app.config, app.syntax, lua.WithLog(func(s string) {
		log.Info("%s", s)
	}))

	ran, err := runner.RunFile(path)
	if err != nil {
		return err
	}
	if ran {
		app.logger.Debug("ran init script %s", path)
	}
	return nil
}

// open loads path into the editor and selects its syntax profile.
func (app *Application) open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	defer f.Close()

	doc := app.doc()
	doc.SetSyntax(app.syntax.Select(path))
	if err := app.editor.Load(f); err != nil {
		return NewOperationError("open", path, err)
	}
	app.filename = path
	app.logger.Info("opened %s (%d lines)", path, doc.NumRows())
	return nil
}

// startWatcher watches the current file for outside changes. Failure only
// disables the feature.
func (app *Application) startWatcher() {
	if !app.config.Editor.WatchFile || app.filename == "" {
		return
	}
	if app.watcher != nil {
		if err := app.watcher.Retarget(app.filename); err != nil {
			app.logger.WithComponent("watcher").Warn("retarget %s: %v", app.filename, err)
		}
		return
	}

	w, err := watcher.New(app.filename)
	if err != nil {
		app.logger.WithComponent("watcher").Warn("watch %s: %v", app.filename, err)
		return
	}
	app.watcher = w
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		if err := app.logFile.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			fmt.Fprintf(os.Stderr, "close log: %v\n", err)
		}
		app.logFile = nil
	}
}
