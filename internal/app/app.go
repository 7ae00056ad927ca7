// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mutablevalue/Code-Editor/internal/clipboard"
	"github.com/mutablevalue/Code-Editor/internal/config"
	"github.com/mutablevalue/Code-Editor/internal/document"
	"github.com/mutablevalue/Code-Editor/internal/event"
	"github.com/mutablevalue/Code-Editor/internal/fileio"
	"github.com/mutablevalue/Code-Editor/internal/highlight"
	"github.com/mutablevalue/Code-Editor/internal/input"
	"github.com/mutablevalue/Code-Editor/internal/logger"
	"github.com/mutablevalue/Code-Editor/internal/session"
	"github.com/mutablevalue/Code-Editor/internal/statusbar"
	"github.com/mutablevalue/Code-Editor/internal/tui"
	"github.com/mutablevalue/Code-Editor/plugins/autosave"
)

// App wires the components together and runs the single control loop.
// Everything that mutates the session happens on that loop; the TUI event
// poller, the gateway goroutines, and the autosave ticker only feed it
// through channels.
type App struct {
	cfg *config.Config

	tuiManager   *tui.TUI
	view         *tui.View
	sess         *session.Session
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	dispatcher   *input.Dispatcher
	clip         *clipboard.Manager
	saver        *autosave.Autosave

	// Syntax state, recomputed when the content changes.
	lang  *highlight.Language
	spans highlight.Result

	quit          chan struct{}
	redrawRequest chan struct{}
	tuiEvents     chan tcell.Event
}

// New creates and initializes an application instance. fileArg is the
// optional positional argument; it takes precedence over the configured
// default file for the startup load.
func New(cfg *config.Config, fileArg string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	sess := session.New(fileio.NewDialogGateway(), eventManager)

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		view:          tui.NewView(cfg.Editor.TabWidth),
		sess:          sess,
		statusBar:     statusbar.New(statusbar.DefaultConfig()),
		eventManager:  eventManager,
		dispatcher:    input.NewDispatcher(),
		clip:          clipboard.NewManager(cfg.Editor.SystemClipboard),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
		tuiEvents:     make(chan tcell.Event, 8),
	}

	if cfg.Autosave.Enabled {
		a.saver = autosave.New(time.Duration(cfg.Autosave.IntervalSeconds) * time.Second)
	}

	// --- Wire session events to display state ---
	eventManager.Subscribe(event.TypeDocumentEdited, a.handleDocumentEdited)
	eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)
	eventManager.Subscribe(event.TypeDocumentReplaced, a.handleDocumentReplaced)
	eventManager.Subscribe(event.TypeFileOpened, a.handleFileOpened)
	eventManager.Subscribe(event.TypeFileSaved, a.handleFileSaved)
	eventManager.Subscribe(event.TypeSessionError, a.handleSessionError)

	// --- Startup load ---
	startPath := fileArg
	if startPath == "" {
		startPath = cfg.Editor.DefaultFile
	}
	if startPath != "" {
		if err := sess.OpenPath(startPath); err != nil {
			logger.Warnf("App: startup load of %q rejected: %v", startPath, err)
		}
	}

	a.syncStatus()
	return a, nil
}

// Run starts the TUI poller and the control loop, blocking until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollLoop()
	if a.saver != nil {
		a.saver.Start()
		defer a.saver.Stop()
	}

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Ctrl+S Save | Ctrl+O Open | Ctrl+N New | Ctrl+Q Quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.sess.IsDirty() {
				logger.Warnf("App: exited with unsaved changes")
			}
			logger.Infof("App: exiting")
			return nil

		case ev, ok := <-a.tuiEvents:
			if !ok {
				return nil
			}
			a.handleTUIEvent(ev)

		case msg := <-a.sess.Messages():
			a.sess.Handle(msg)
			a.syncStatus()
			a.requestRedraw()

		case <-a.autosaveTicks():
			a.autosaveIfDue()

		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// pollLoop forwards TUI events to the control loop. Runs in its own
// goroutine; PollEvent returns nil once the screen is finalized.
func (a *App) pollLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			close(a.tuiEvents)
			return
		}
		select {
		case a.tuiEvents <- ev:
		case <-a.quit:
			return
		}
	}
}

func (a *App) autosaveTicks() <-chan struct{} {
	if a.saver == nil {
		return nil
	}
	return a.saver.Ticks()
}

// autosaveIfDue saves only when there is something to persist and a known
// destination; it never prompts and never preempts an in-flight operation.
func (a *App) autosaveIfDue() {
	if !a.sess.IsDirty() || a.sess.Path() == "" || a.sess.Busy() {
		return
	}
	logger.Debugf("App: autosave triggered for %q", a.sess.Path())
	if err := a.sess.Save(); err == nil {
		a.syncStatus()
		a.requestRedraw()
	}
}

func (a *App) handleTUIEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		a.requestRedraw()
	case *tcell.EventKey:
		a.handleKey(e)
	}
}

// handleKey decodes a key event and executes the resulting command on the
// session. Open and Save are serialized; a rejection surfaces as a status
// message instead of queueing.
func (a *App) handleKey(ev *tcell.EventKey) {
	cmd := a.dispatcher.ProcessEvent(ev)

	switch cmd.Request {
	case input.RequestNone:
		return

	case input.RequestQuit:
		close(a.quit)
		return

	case input.RequestSave:
		if !a.sess.CanSave() {
			return
		}
		if err := a.sess.Save(); errors.Is(err, session.ErrBusy) {
			a.statusBar.SetTemporaryMessage("%s in progress, try again", a.sess.Pending())
		}

	case input.RequestOpen:
		if err := a.sess.Open(); errors.Is(err, session.ErrBusy) {
			a.statusBar.SetTemporaryMessage("%s in progress, try again", a.sess.Pending())
		}

	case input.RequestNewFile:
		a.sess.NewDocument()

	case input.RequestCopy:
		a.copySelection()

	case input.RequestCut:
		if a.copySelection() {
			a.sess.Edit(document.InsertText(""))
		}

	case input.RequestPaste:
		if text := a.clip.Read(); text != "" {
			a.sess.Edit(document.InsertText(text))
		}

	case input.RequestEdit:
		a.sess.Edit(cmd.Action)
	}

	a.syncStatus()
	a.requestRedraw()
}

// copySelection puts the selected text into the clipboard. Reports whether
// there was a selection to copy.
func (a *App) copySelection() bool {
	text := a.sess.Document().SelectedText()
	if text == "" {
		return false
	}
	a.clip.Write(text)
	return true
}

// --- Event handlers ---

func (a *App) handleDocumentEdited(e event.Event) bool {
	a.annotate()
	return false
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition.Line+1, data.NewPosition.Col+1)
	}
	return false
}

func (a *App) handleDocumentReplaced(e event.Event) bool {
	a.lang = highlight.ForPath(a.sess.Path())
	a.annotate()
	return false
}

func (a *App) handleFileOpened(e event.Event) bool {
	if data, ok := e.Data.(event.FileOpenedData); ok {
		a.statusBar.SetTemporaryMessage("Opened %s", data.Path)
	}
	return false
}

func (a *App) handleFileSaved(e event.Event) bool {
	if data, ok := e.Data.(event.FileSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.Path)
	}
	return false
}

func (a *App) handleSessionError(e event.Event) bool {
	if data, ok := e.Data.(event.SessionErrorData); ok {
		a.statusBar.SetError(data.Err)
	}
	return false
}

// annotate recomputes the syntax spans for the whole content. Unknown file
// types simply clear the spans.
func (a *App) annotate() {
	if a.lang == nil {
		a.spans = nil
		return
	}
	spans, err := highlight.Annotate(a.sess.Document().Text(), a.lang)
	if err != nil {
		logger.Warnf("App: highlighting failed: %v", err)
		a.spans = nil
		return
	}
	a.spans = spans
}

// syncStatus pushes the session's display outputs into the status bar.
func (a *App) syncStatus() {
	a.statusBar.SetFileInfo(a.sess.Path(), a.sess.IsDirty(), a.sess.CanSave())
	line, col := a.sess.Document().CursorPosition()
	a.statusBar.SetCursorInfo(line, col)
	if a.sess.Busy() {
		a.statusBar.SetBusy(a.sess.Pending().String())
	} else {
		a.statusBar.SetBusy("")
	}
	if a.sess.LastError() == nil {
		a.statusBar.ClearError()
	}
}

func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// draw clears and redraws the document view and the status bar.
func (a *App) draw() {
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	a.view.ScrollTo(a.sess.Document(), width, height)
	a.view.Draw(a.tuiManager, a.sess.Document(), a.spans)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	a.tuiManager.Show()
}
