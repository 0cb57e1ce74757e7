package app

import (
	"errors"

	"github.com/lemodoescoding/te/internal/input/key"
	"github.com/lemodoescoding/te/internal/input/prompt"
	"github.com/lemodoescoding/te/internal/search"
)

// processKey applies one key press.
func (app *Application) processKey(ev key.Event) error {
	ed := app.editor

	if ev.IsCtrl('q') {
		ok, remaining := ed.QuitGuard().Request(app.doc().Dirty())
		if ok {
			return ErrQuit
		}
		app.setMessage(msgQuitWarning, remaining)
		return nil
	}
	ed.QuitGuard().Reset()

	switch {
	case ev.Key == key.KeyEnter:
		ed.InsertNewline()
	case ev.IsCtrl('s'):
		app.save()
	case ev.IsCtrl('f'):
		app.find()
	case ev.Key == key.KeyHome:
		ed.Home()
	case ev.Key == key.KeyEnd:
		ed.End()
	case ev.Key == key.KeyBackspace:
		ed.DeleteChar()
	case ev.Key == key.KeyDelete:
		ed.DeleteForward()
	case ev.Key == key.KeyPageUp:
		ed.PageUp()
	case ev.Key == key.KeyPageDown:
		ed.PageDown()
	case ev.Key.IsArrowKey():
		ed.Move(ev.Key)
	case ev.Key == key.KeyTab:
		ed.InsertChar('\t')
	case ev.IsText():
		ed.InsertChar(ev.Byte())
	}
	// Ctrl-L, Escape and other control keys do nothing.
	return nil
}

// runPrompt shows format in the message bar and collects a line of input.
// onKey, when set, is called after every key with the input so far.
func (app *Application) runPrompt(format string, onKey func(input string, ev key.Event)) (string, error) {
	p := prompt.New(format)
	for {
		app.setMessage("%s", p.Message())
		if err := app.refresh(); err != nil {
			return "", err
		}
		ev, err := app.readKey()
		if err != nil {
			return "", err
		}

		status := p.Handle(ev)
		if onKey != nil {
			onKey(p.Input(), ev)
		}
		switch status {
		case prompt.Accepted:
			app.setMessage("")
			return p.Input(), nil
		case prompt.Canceled:
			app.setMessage("")
			return "", ErrPromptCanceled
		}
	}
}

// find runs an incremental search. Escape returns the cursor to where the
// search started.
func (app *Application) find() {
	ed := app.editor
	saved := ed.SavePosition()
	session := search.NewSession(app.doc())
	defer session.Close()

	_, err := app.runPrompt(promptSearch, func(query string, ev key.Event) {
		if m, ok := session.Update(query, ev); ok {
			ed.JumpTo(m.Row, m.Col)
		}
	})
	if err != nil {
		ed.RestorePosition(saved)
		if !errors.Is(err, ErrPromptCanceled) {
			app.logger.Warn("search: %v", err)
		}
	}
}

// save writes the document, asking for a name first if it has none.
func (app *Application) save() {
	renamed := false
	if app.filename == "" {
		name, err := app.runPrompt(promptSaveAs, nil)
		if err != nil {
			app.setMessage(msgSaveAborted)
			return
		}
		app.filename = name
		renamed = true
		app.doc().SetSyntax(app.syntax.Select(name))
	}

	data := app.doc().FlatText()
	if err := writeFileAtomic(app.filename, data); err != nil {
		app.logger.Error("%v", NewOperationError("save", app.filename, err))
		app.setMessage(msgSaveFailed, err)
		return
	}

	app.doc().MarkClean()
	app.setMessage(msgSaved, len(data))
	app.logger.Info("saved %s (%d bytes)", app.filename, len(data))

	if renamed || app.watcher == nil {
		app.startWatcher()
	}
	if app.watcher != nil {
		app.watcher.Sync()
	}
}
