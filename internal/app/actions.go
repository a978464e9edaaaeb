package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/core/selection"
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/input"
	"github.com/bethropolis/composer/internal/logger"
)

var moveMotions = map[input.Action]selection.Motion{
	input.ActionMoveLeft:     selection.MotionLeft,
	input.ActionMoveRight:    selection.MotionRight,
	input.ActionMoveUp:       selection.MotionUp,
	input.ActionMoveDown:     selection.MotionDown,
	input.ActionMoveHome:     selection.MotionHome,
	input.ActionMoveEnd:      selection.MotionEnd,
	input.ActionMoveDocStart: selection.MotionDocStart,
	input.ActionMoveDocEnd:   selection.MotionDocEnd,
}

var extendMotions = map[input.Action]selection.Motion{
	input.ActionSelectLeft:     selection.MotionLeft,
	input.ActionSelectRight:    selection.MotionRight,
	input.ActionSelectUp:       selection.MotionUp,
	input.ActionSelectDown:     selection.MotionDown,
	input.ActionSelectHome:     selection.MotionHome,
	input.ActionSelectEnd:      selection.MotionEnd,
	input.ActionSelectDocStart: selection.MotionDocStart,
	input.ActionSelectDocEnd:   selection.MotionDocEnd,
}

// HandleKeyEvent maps ev to an action and runs it. It reports whether the
// screen needs a redraw and returns ErrQuit when the app should exit.
func (a *App) HandleKeyEvent(ev *tcell.EventKey) (bool, error) {
	if a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev}) {
		return true, nil // Consumed by a subscriber
	}
	actionEvent := a.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "Key %v -> %v", ev.Name(), actionEvent.Action)
	return a.HandleAction(actionEvent)
}

// HandleAction runs one composer action.
func (a *App) HandleAction(ae input.ActionEvent) (bool, error) {
	if ae.Action != input.ActionQuit {
		a.quitPending = false
	}

	if motion, ok := moveMotions[ae.Action]; ok {
		a.editor.Move(motion)
		return true, nil
	}
	if motion, ok := extendMotions[ae.Action]; ok {
		a.editor.Extend(motion)
		return true, nil
	}

	switch ae.Action {
	case input.ActionQuit:
		return a.quit()
	case input.ActionSave:
		return true, a.save()
	case input.ActionUndo:
		if !a.editor.Undo() {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !a.editor.Redo() {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}
	case input.ActionSelectAll:
		a.editor.SelectAll()
	case input.ActionInsertRune:
		a.editor.InsertRune(ae.Rune)
	case input.ActionInsertNewLine:
		a.editor.InsertNewLine()
	case input.ActionInsertLineBelow:
		a.editor.InsertLineBelow()
	case input.ActionInsertLineAbove:
		a.editor.InsertLineAbove()
	case input.ActionIndent:
		a.editor.Indent()
	case input.ActionOutdent:
		a.editor.Outdent()
	case input.ActionDeleteCharBackward:
		a.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		a.editor.DeleteForward()
	case input.ActionCopy:
		if a.editor.Copy() {
			a.statusBar.SetTemporaryMessage("Copied selection")
		}
	case input.ActionCut:
		a.editor.Cut()
	case input.ActionPaste:
		if !a.editor.Paste() {
			a.statusBar.SetTemporaryMessage("Clipboard is empty")
		}
	default:
		return false, nil
	}
	return true, nil
}

// quit exits, asking once for confirmation when there are unsaved changes.
func (a *App) quit() (bool, error) {
	if a.editor.GetBuffer().IsModified() && !a.quitPending {
		a.quitPending = true
		a.statusBar.SetTemporaryMessage("Unsaved changes! Press quit again to discard, Ctrl+S to save")
		return true, nil
	}
	return false, ErrQuit
}

func (a *App) save() error {
	err := a.editor.SaveBuffer()
	if errors.Is(err, buffer.ErrNoPath) {
		a.statusBar.SetTemporaryMessage("No file name; start composer with a path to save")
		return nil
	}
	return err
}
