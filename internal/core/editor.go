// internal/core/editor.go
package core

import (
	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/config"
	"github.com/bethropolis/composer/internal/core/clipboard"
	"github.com/bethropolis/composer/internal/core/history"
	"github.com/bethropolis/composer/internal/core/intent"
	"github.com/bethropolis/composer/internal/core/selection"
	"github.com/bethropolis/composer/internal/core/text"
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/types"
)

// Options configures an Editor.
type Options struct {
	TabWidth        int
	MaxHistory      int
	SystemClipboard bool
}

// OptionsFromConfig extracts editor options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		TabWidth:        cfg.Editor.TabWidth,
		MaxHistory:      cfg.Editor.MaxHistory,
		SystemClipboard: cfg.Editor.SystemClipboard,
	}
}

// Editor is the collaborator that owns a buffer and drives the text engine.
// Each editing method computes the resulting cursor and applies it back to
// the buffer with Select.
type Editor struct {
	buffer    buffer.Buffer
	textArea  *text.TextArea
	history   *history.Recorder
	intent    *intent.Intent
	selection *selection.Manager
	clipboard *clipboard.Manager
	events    *event.Manager
	tabWidth  int
}

// NewEditor creates a new Editor over buf. events may be nil.
func NewEditor(buf buffer.Buffer, events *event.Manager, opts Options) *Editor {
	textArea := text.NewTextArea(buf)
	recorder := history.NewRecorder(text.NewOperations(buf), buf, events, opts.MaxHistory)
	in := intent.New(opts.TabWidth, textArea, recorder)
	return &Editor{
		buffer:    buf,
		textArea:  textArea,
		history:   recorder,
		intent:    in,
		selection: selection.NewManager(textArea),
		clipboard: clipboard.NewManager(textArea, recorder, opts.SystemClipboard),
		events:    events,
		tabWidth:  in.Size(),
	}
}

// SetClipboardBackend replaces the clipboard backend.
func (e *Editor) SetClipboardBackend(backend clipboard.Backend) {
	e.clipboard = clipboard.NewManagerWithBackend(e.textArea, e.history, backend)
}

// GetBuffer returns the edited buffer.
func (e *Editor) GetBuffer() buffer.Buffer { return e.buffer }

// GetHistory returns the undo recorder.
func (e *Editor) GetHistory() *history.Recorder { return e.history }

// GetEventManager returns the event manager, which may be nil.
func (e *Editor) GetEventManager() *event.Manager { return e.events }

// TabWidth returns the indent size in effect.
func (e *Editor) TabWidth() int { return e.tabWidth }

// Cursor snapshots the buffer's live selection.
func (e *Editor) Cursor() types.Cursor {
	return text.CursorFrom(e.buffer)
}

// Value returns the current text.
func (e *Editor) Value() string {
	return e.buffer.Value()
}
