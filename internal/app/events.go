package app

import (
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/logger"
)

// subscribe wires the app's status handlers to the event manager.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModifiedForStatus)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoadedForStatus)
}

// handleCursorMovedForStatus updates the status bar based on the selection
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.Cursor)
	}
	return false // Not consumed
}

// handleBufferModifiedForStatus updates the modified indicator
func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		logger.DebugTagf("app", "Buffer modified at %d (delta %d)", data.Edit.Start, data.Edit.Delta())
	}
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleBufferSavedForStatus updates the status bar when the buffer is saved
func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetTemporaryMessage("Saved %s", data.FilePath)
	}
	return false // Not consumed
}

// handleBufferLoadedForStatus updates file info after a load
func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false // Not consumed
}
