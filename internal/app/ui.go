package app

import (
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/tui"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	statusBarHeight := a.cfg.Editor.StatusBarHeight
	viewHeight := height - statusBarHeight

	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), StatusBarHeight: %d, Calculated ViewHeight: %d",
		width, height, statusBarHeight, viewHeight)

	a.tuiManager.Clear()
	tui.DrawText(a.tuiManager, a.editor.Value(), a.editor.Cursor(), a.viewport, viewHeight, a.editor.TabWidth(), a.styles)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.Cursor())
}
