package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/core/text"
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/types"
)

func newRecorder(value string, max int) (*Recorder, *buffer.RuneBuffer, *event.Manager) {
	buf := buffer.NewFromString(value)
	events := event.NewManager()
	return NewRecorder(text.NewOperations(buf), buf, events, max), buf, events
}

func TestInsertRecordsAndDispatches(t *testing.T) {
	r, buf, events := newRecorder("hello", 0)
	var edits []types.EditInfo
	events.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		edits = append(edits, e.Data.(event.BufferModifiedData).Edit)
		return false
	})

	got := r.Insert(types.NewCursor(0, 1, types.DirectionForward), "J")

	assert.Equal(t, "Jello", buf.Value())
	assert.Equal(t, types.NewCursor(0, 1, types.DirectionForward), got)
	assert.True(t, r.CanUndo())
	assert.False(t, r.CanRedo())
	require.Len(t, edits, 1)
	assert.Equal(t, types.NewEditInfo(0, "h", "J"), edits[0])
}

func TestUndoRedo(t *testing.T) {
	r, buf, _ := newRecorder("ab", 0)
	buf.SetSelection(2, 2, types.DirectionNone)

	r.Insert(types.NewCaret(2), "c")
	buf.SetSelection(0, 3, types.DirectionBackward)
	r.Insert(types.NewCursor(0, 3, types.DirectionBackward), "xyz!")
	require.Equal(t, "xyz!", buf.Value())

	c, ok := r.Undo()
	require.True(t, ok)
	assert.Equal(t, "abc", buf.Value())
	assert.Equal(t, types.NewCursor(0, 3, types.DirectionBackward), c)

	c, ok = r.Undo()
	require.True(t, ok)
	assert.Equal(t, "ab", buf.Value())
	assert.Equal(t, types.NewCaret(2), c)

	_, ok = r.Undo()
	assert.False(t, ok)

	c, ok = r.Redo()
	require.True(t, ok)
	assert.Equal(t, "abc", buf.Value())
	assert.Equal(t, types.NewCaret(3), c)

	c, ok = r.Redo()
	require.True(t, ok)
	assert.Equal(t, "xyz!", buf.Value())
	assert.Equal(t, types.NewCaret(4), c)

	_, ok = r.Redo()
	assert.False(t, ok)
}

func TestRecordAfterUndoDropsRedo(t *testing.T) {
	r, buf, _ := newRecorder("", 0)
	r.Insert(types.NewCaret(0), "a")
	r.Insert(types.NewCaret(1), "b")
	r.Undo()
	require.True(t, r.CanRedo())

	r.Insert(types.NewCaret(1), "c")
	assert.Equal(t, "ac", buf.Value())
	assert.False(t, r.CanRedo())
	assert.Equal(t, 2, r.Len())
}

func TestNoOpInsertIsNotRecorded(t *testing.T) {
	r, buf, _ := newRecorder("abc", 0)
	r.Insert(types.NewCursor(0, 3, types.DirectionNone), "abc")
	assert.Equal(t, "abc", buf.Value())
	assert.False(t, r.CanUndo())
}

func TestMaxHistoryEvictsOldest(t *testing.T) {
	r, buf, _ := newRecorder("", 2)
	for i, s := range []string{"a", "b", "c"} {
		r.Insert(types.NewCaret(i), s)
	}
	assert.Equal(t, 2, r.Len())

	r.Undo()
	r.Undo()
	_, ok := r.Undo()
	assert.False(t, ok)
	assert.Equal(t, "a", buf.Value())
}

func TestEvictionReleasesDroppedChanges(t *testing.T) {
	r, _, _ := newRecorder("", 2)
	for i, s := range []string{"a", "b", "c", "d"} {
		r.Insert(types.NewCaret(i), s)
	}
	require.Equal(t, 2, r.Len())
	assert.Equal(t, "c", r.changes[0].Edit.NewText)
	assert.Equal(t, "d", r.changes[1].Edit.NewText)

	for _, dropped := range r.changes[len(r.changes):cap(r.changes)] {
		assert.Equal(t, Change{}, dropped)
	}

	r.Undo()
	r.Insert(types.NewCaret(3), "e")
	require.Equal(t, 2, r.Len())
	for _, dropped := range r.changes[len(r.changes):cap(r.changes)] {
		assert.Equal(t, Change{}, dropped)
	}
}

func TestClear(t *testing.T) {
	r, _, _ := newRecorder("", 0)
	r.Insert(types.NewCaret(0), "a")
	r.Clear()
	assert.False(t, r.CanUndo())
	assert.False(t, r.CanRedo())
	assert.Equal(t, 0, r.Len())
}

func TestSelectDelegates(t *testing.T) {
	r, buf, _ := newRecorder("hello", 0)
	r.Select(types.NewCursor(1, 4, types.DirectionBackward))
	assert.Equal(t, types.NewCursor(1, 4, types.DirectionBackward), text.CursorFrom(buf))

	r.Deselect(types.NewCursor(1, 4, types.DirectionBackward))
	assert.Equal(t, types.NewCaret(1), text.CursorFrom(buf))
	assert.False(t, r.CanUndo())
}
