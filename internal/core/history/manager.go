// Package history provides undo/redo for a text surface by recording every
// replacement that passes through its Operations.
package history

import (
	"sync"

	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/config"
	"github.com/bethropolis/composer/internal/core/text"
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/types"
)

// Change represents a single, reversible replacement.
type Change struct {
	Edit         types.EditInfo
	CursorBefore types.Cursor // Live selection before the change was applied
}

// Recorder is a text.Operations that records each Insert so it can be undone.
type Recorder struct {
	ops          text.Operations
	surface      buffer.Surface
	events       *event.Manager
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewRecorder wraps ops. events may be nil.
func NewRecorder(ops text.Operations, surface buffer.Surface, events *event.Manager, maxHistory int) *Recorder {
	if maxHistory <= 0 {
		maxHistory = config.DefaultMaxHistory
	}
	return &Recorder{
		ops:        ops,
		surface:    surface,
		events:     events,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// Select delegates to the wrapped Operations.
func (r *Recorder) Select(c types.Cursor) { r.ops.Select(c) }

// Deselect delegates to the wrapped Operations.
func (r *Recorder) Deselect(c types.Cursor) { r.ops.Deselect(c) }

// Insert applies the replacement, records it and dispatches TypeBufferModified.
// A replacement that leaves the text unchanged is not recorded.
func (r *Recorder) Insert(c types.Cursor, s string) types.Cursor {
	before := text.CursorFrom(r.surface)
	old := text.NewTextArea(r.surface).Selection(c)

	inserted := r.ops.Insert(c, s)
	if old == s {
		return inserted
	}

	edit := types.NewEditInfo(inserted.Start, old, s)
	r.record(Change{Edit: edit, CursorBefore: before})
	r.dispatch(edit)
	return inserted
}

func (r *Recorder) record(change Change) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// Recording after an undo drops the redo branch.
	if r.currentIndex < len(r.changes) {
		clear(r.changes[r.currentIndex:])
		r.changes = r.changes[:r.currentIndex]
	}
	r.changes = append(r.changes, change)
	if over := len(r.changes) - r.maxHistory; over > 0 {
		// Shift in place so evicted text is not pinned by the backing array.
		n := copy(r.changes, r.changes[over:])
		clear(r.changes[n:])
		r.changes = r.changes[:n]
	}
	r.currentIndex = len(r.changes)

	logger.DebugTagf("history", "Recorded change at %d. Index: %d, Count: %d",
		change.Edit.Start, r.currentIndex, len(r.changes))
}

// Undo reverts the last recorded change and returns the cursor that was live
// before it. ok is false when there is nothing to undo.
func (r *Recorder) Undo() (types.Cursor, bool) {
	r.mutex.Lock()
	if r.currentIndex <= 0 {
		r.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to undo")
		return types.Cursor{}, false
	}
	r.currentIndex--
	change := r.changes[r.currentIndex]
	r.mutex.Unlock()

	inverse := change.Edit.Inverse()
	r.apply(inverse)
	logger.DebugTagf("history", "Undid change at %d", inverse.Start)
	return change.CursorBefore, true
}

// Redo reapplies the last undone change and returns a caret after its text.
// ok is false when there is nothing to redo.
func (r *Recorder) Redo() (types.Cursor, bool) {
	r.mutex.Lock()
	if r.currentIndex >= len(r.changes) {
		r.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to redo")
		return types.Cursor{}, false
	}
	change := r.changes[r.currentIndex]
	r.currentIndex++
	r.mutex.Unlock()

	r.apply(change.Edit)
	logger.DebugTagf("history", "Redid change at %d", change.Edit.Start)
	return types.NewCaret(change.Edit.NewEnd), true
}

// apply replays edit through the wrapped Operations without recording it.
func (r *Recorder) apply(edit types.EditInfo) {
	r.ops.Insert(types.NewCursor(edit.Start, edit.OldEnd, types.DirectionNone), edit.NewText)
	r.dispatch(edit)
}

func (r *Recorder) dispatch(edit types.EditInfo) {
	if r.events != nil {
		r.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	}
}

// Clear resets the history stack. Call this on file load.
func (r *Recorder) Clear() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.changes = r.changes[:0]
	r.currentIndex = 0
	logger.DebugTagf("history", "Cleared")
}

// CanUndo returns true if there are changes that can be undone.
func (r *Recorder) CanUndo() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (r *Recorder) CanRedo() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.currentIndex < len(r.changes)
}

// Len returns the number of recorded changes, including undone ones.
func (r *Recorder) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.changes)
}

var _ text.Operations = (*Recorder)(nil)
