// internal/app/app.go
package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/config"
	"github.com/bethropolis/composer/internal/core"
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/input"
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/statusbar"
	"github.com/bethropolis/composer/internal/tui"
)

// ErrQuit is returned by HandleKeyEvent when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// App encapsulates the core components and main loop of the composer.
type App struct {
	tuiManager     *tui.TUI
	editor         *core.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	viewport       *tui.Viewport
	styles         tui.Styles
	cfg            *config.Config

	quitPending bool // Set after a quit attempt with unsaved changes

	// Channels managed by the App
	events chan tcell.Event
	done   chan struct{}
}

// NewApp creates an application on the real terminal.
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := NewWithTUI(tuiManager, filePath, cfg)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewWithTUI creates an application drawing to tuiManager. An empty filePath
// starts with an unnamed buffer.
func NewWithTUI(tuiManager *tui.TUI, filePath string, cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	eventManager := event.NewManager()
	editor := core.NewEditor(buffer.New(), eventManager, core.OptionsFromConfig(cfg))

	if filePath != "" {
		if err := editor.LoadBuffer(filePath); err != nil {
			return nil, err
		}
	}

	statusConfig := statusbar.DefaultConfig()
	a := &App{
		tuiManager:     tuiManager,
		editor:         editor,
		statusBar:      statusbar.New(statusConfig),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		viewport:       &tui.Viewport{ScrollOff: cfg.Editor.ScrollOff},
		styles:         tui.DefaultStyles(),
		cfg:            cfg,
		events:         make(chan tcell.Event, 16),
		done:           make(chan struct{}),
	}
	a.subscribe()
	a.updateStatusBarContent()
	return a, nil
}

// Editor returns the composer core.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer close(a.done)

	go a.pollLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Tab indent | Shift+Tab outdent | Ctrl+S save | Esc quit")
	a.drawEditor()

	// Every editing call runs on this goroutine.
	for ev := range a.events {
		redraw, err := a.handleEvent(ev)
		if errors.Is(err, ErrQuit) {
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("App: Exited with unsaved changes.")
			}
			logger.Infof("App: Exiting application.")
			return nil
		}
		if err != nil {
			logger.Errorf("App: %v", err)
			a.statusBar.SetTemporaryMessage("Error: %v", err)
			redraw = true
		}
		if redraw {
			a.drawEditor()
		}
	}
	return nil
}

// pollLoop forwards terminal events to the main loop until the screen closes.
func (a *App) pollLoop() {
	defer close(a.events)
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// handleEvent reacts to one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) (bool, error) {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true, nil
	case *tcell.EventKey:
		return a.HandleKeyEvent(eventData)
	}
	return false, nil
}
