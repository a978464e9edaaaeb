package core

import (
	"fmt"

	"github.com/bethropolis/composer/internal/core/selection"
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/types"
	"github.com/bethropolis/composer/internal/utils"
)

// apply resynchronises the buffer with c and announces the move.
func (e *Editor) apply(c types.Cursor) {
	e.history.Select(c)
	if e.events != nil {
		e.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Cursor: c})
	}
}

// --- Text input ---

// InsertText replaces the selection with s and leaves the caret after it.
func (e *Editor) InsertText(s string) {
	inserted := e.history.Insert(e.Cursor(), s)
	e.apply(types.NewCaret(inserted.End))
}

// InsertRune replaces the selection with r.
func (e *Editor) InsertRune(r rune) {
	e.InsertText(string(r))
}

// DeleteBackward removes the selection, or the grapheme before the caret.
func (e *Editor) DeleteBackward() {
	c := e.Cursor()
	if !c.IsSelection() {
		if c.Start == 0 {
			return
		}
		c = types.NewCursor(utils.PrevGraphemeBoundary(e.Value(), c.Start), c.Start, types.DirectionNone)
	}
	removed := e.history.Insert(c, "")
	e.apply(types.NewCaret(removed.Start))
}

// DeleteForward removes the selection, or the grapheme after the caret.
func (e *Editor) DeleteForward() {
	c := e.Cursor()
	if !c.IsSelection() {
		if c.End >= e.textArea.Len() {
			return
		}
		c = types.NewCursor(c.Start, utils.NextGraphemeBoundary(e.Value(), c.End), types.DirectionNone)
	}
	removed := e.history.Insert(c, "")
	e.apply(types.NewCaret(removed.Start))
}

// --- Indentation ---

// Indent indents every line touched by the selection.
func (e *Editor) Indent() {
	e.apply(e.intent.MoveForward(e.Cursor()))
}

// Outdent removes one indent level from every line touched by the selection.
func (e *Editor) Outdent() {
	e.apply(e.intent.MoveBackward(e.Cursor()))
}

// InsertNewLine replaces the selection with a newline that keeps the indentation.
func (e *Editor) InsertNewLine() {
	e.apply(e.intent.AddNewLine(e.Cursor()))
}

// InsertLineBelow opens an indented line below the current one.
func (e *Editor) InsertLineBelow() {
	e.apply(e.intent.AddNextLine(e.Cursor()))
}

// InsertLineAbove opens an indented line above the current one.
func (e *Editor) InsertLineAbove() {
	e.apply(e.intent.AddPreviousLine(e.Cursor()))
}

// --- Movement ---

// Move collapses the selection and moves the caret.
func (e *Editor) Move(motion selection.Motion) {
	e.apply(e.selection.Move(e.Cursor(), motion))
}

// Extend moves the active end of the selection.
func (e *Editor) Extend(motion selection.Motion) {
	e.apply(e.selection.Extend(e.Cursor(), motion))
}

// SelectAll selects the whole text.
func (e *Editor) SelectAll() {
	e.apply(e.selection.SelectAll())
}

// ClearSelection collapses the selection to its active end.
func (e *Editor) ClearSelection() {
	c := e.Cursor()
	e.history.Deselect(c)
	if e.events != nil {
		e.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Cursor: e.Cursor()})
	}
}

// --- Clipboard ---

// Copy copies the selection. It returns false when nothing is selected.
func (e *Editor) Copy() bool {
	return e.clipboard.Copy(e.Cursor())
}

// Cut copies and removes the selection.
func (e *Editor) Cut() bool {
	c, ok := e.clipboard.Cut(e.Cursor())
	if ok {
		e.apply(c)
	}
	return ok
}

// Paste replaces the selection with the clipboard text.
func (e *Editor) Paste() bool {
	c, ok := e.clipboard.Paste(e.Cursor())
	if ok {
		e.apply(c)
	}
	return ok
}

// --- History ---

// Undo reverts the last change and restores the selection that preceded it.
func (e *Editor) Undo() bool {
	c, ok := e.history.Undo()
	if ok {
		e.apply(c)
	}
	return ok
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	c, ok := e.history.Redo()
	if ok {
		e.apply(c)
	}
	return ok
}

// --- Persistence ---

// LoadBuffer replaces the text with the file at path and clears history.
func (e *Editor) LoadBuffer(path string) error {
	if err := e.buffer.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.history.Clear()
	if e.events != nil {
		e.events.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	}
	logger.Infof("Editor: Loaded %q (%d runes)", path, e.textArea.Len())
	return nil
}

// SaveBuffer writes the text to the buffer's path, or to filePath when given.
func (e *Editor) SaveBuffer(filePath ...string) error {
	path := ""
	if len(filePath) > 0 {
		path = filePath[0]
	}
	if err := e.buffer.Save(path); err != nil {
		return err
	}
	if e.events != nil {
		e.events.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	logger.Infof("Editor: Saved %q", e.buffer.FilePath())
	return nil
}
