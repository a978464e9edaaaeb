package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/core/selection"
	"github.com/bethropolis/composer/internal/event"
	"github.com/bethropolis/composer/internal/types"
)

func newEditor(value string) (*Editor, *buffer.RuneBuffer, *event.Manager) {
	buf := buffer.NewFromString(value)
	events := event.NewManager()
	return NewEditor(buf, events, Options{TabWidth: 2}), buf, events
}

func TestTypingAndUndo(t *testing.T) {
	e, _, _ := newEditor("")
	for _, r := range "hi" {
		e.InsertRune(r)
	}
	assert.Equal(t, "hi", e.Value())
	assert.Equal(t, types.NewCaret(2), e.Cursor())

	require.True(t, e.Undo())
	assert.Equal(t, "h", e.Value())
	assert.Equal(t, types.NewCaret(1), e.Cursor())

	require.True(t, e.Redo())
	assert.Equal(t, "hi", e.Value())
	assert.Equal(t, types.NewCaret(2), e.Cursor())
}

func TestIndentKeepsSelection(t *testing.T) {
	e, buf, _ := newEditor("a\nb\nc")
	buf.SetSelection(0, 5, types.DirectionForward)

	e.Indent()
	assert.Equal(t, "  a\n  b\n  c", e.Value())
	assert.Equal(t, types.NewCursor(0, 11, types.DirectionForward), e.Cursor())

	e.Outdent()
	assert.Equal(t, "a\nb\nc", e.Value())
	assert.Equal(t, types.NewCursor(0, 5, types.DirectionForward), e.Cursor())

	require.True(t, e.Undo())
	assert.Equal(t, "  a\n  b\n  c", e.Value())
	assert.Equal(t, types.NewCursor(0, 11, types.DirectionForward), e.Cursor())
}

func TestSmartNewLines(t *testing.T) {
	e, buf, _ := newEditor("  foo")
	buf.SetSelection(5, 5, types.DirectionNone)

	e.InsertNewLine()
	assert.Equal(t, "  foo\n  ", e.Value())
	assert.Equal(t, types.NewCaret(8), e.Cursor())

	e.InsertLineAbove()
	assert.Equal(t, "  foo\n  \n  ", e.Value())
	assert.Equal(t, types.NewCaret(8), e.Cursor())

	buf.SetSelection(1, 1, types.DirectionNone)
	e.InsertLineBelow()
	assert.Equal(t, "  foo\n  \n  \n  ", e.Value())
	assert.Equal(t, types.NewCaret(8), e.Cursor())
}

func TestDelete(t *testing.T) {
	e, buf, _ := newEditor("ae\u0301b")
	buf.SetSelection(3, 3, types.DirectionNone)

	e.DeleteBackward()
	assert.Equal(t, "ab", e.Value(), "whole grapheme removed")
	assert.Equal(t, types.NewCaret(1), e.Cursor())

	e.DeleteForward()
	assert.Equal(t, "a", e.Value())
	e.DeleteForward()
	assert.Equal(t, "a", e.Value(), "nothing after the caret")

	buf.SetSelection(0, 0, types.DirectionNone)
	e.DeleteBackward()
	assert.Equal(t, "a", e.Value(), "nothing before the caret")

	e.SelectAll()
	e.DeleteBackward()
	assert.Equal(t, "", e.Value())
}

func TestMoveAndExtend(t *testing.T) {
	e, _, events := newEditor("hello\nworld")
	var moves []types.Cursor
	events.Subscribe(event.TypeCursorMoved, func(ev event.Event) bool {
		moves = append(moves, ev.Data.(event.CursorMovedData).Cursor)
		return false
	})

	e.Move(selection.MotionEnd)
	e.Extend(selection.MotionDown)
	assert.Equal(t, types.NewCursor(5, 11, types.DirectionForward), e.Cursor())

	e.ClearSelection()
	assert.Equal(t, types.NewCaret(11), e.Cursor())
	assert.Len(t, moves, 3)
}

func TestClipboardRoundTrip(t *testing.T) {
	e, buf, _ := newEditor("copy me")
	buf.SetSelection(0, 4, types.DirectionBackward)

	require.True(t, e.Cut())
	assert.Equal(t, " me", e.Value())
	assert.Equal(t, types.NewCaret(0), e.Cursor())

	e.Move(selection.MotionDocEnd)
	require.True(t, e.Paste())
	assert.Equal(t, " mecopy", e.Value())
	assert.Equal(t, types.NewCaret(7), e.Cursor())

	assert.False(t, e.Copy(), "caret copies nothing")

	require.True(t, e.Undo())
	require.True(t, e.Undo())
	assert.Equal(t, "copy me", e.Value())
	assert.Equal(t, types.NewCursor(0, 4, types.DirectionBackward), e.Cursor())
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	e, _, events := newEditor("")
	var saved, loaded bool
	events.Subscribe(event.TypeBufferSaved, func(event.Event) bool { saved = true; return false })
	events.Subscribe(event.TypeBufferLoaded, func(event.Event) bool { loaded = true; return false })

	e.InsertText("before")
	require.NoError(t, e.LoadBuffer(path))
	assert.True(t, loaded)
	assert.Equal(t, "x", e.Value())
	assert.False(t, e.GetHistory().CanUndo(), "load clears history")

	e.Move(selection.MotionDocEnd)
	e.InsertText("yz")
	require.NoError(t, e.SaveBuffer())
	assert.True(t, saved)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xyz", string(content))
	assert.False(t, e.GetBuffer().IsModified())
}

func TestSaveWithoutPath(t *testing.T) {
	e, _, _ := newEditor("text")
	assert.ErrorIs(t, e.SaveBuffer(), buffer.ErrNoPath)
}
