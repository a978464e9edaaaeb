package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/composer/internal/types"
)

func TestRuneBufferValue(t *testing.T) {
	b := NewFromString("héllo\nwörld")
	assert.Equal(t, 11, b.Len())
	assert.Equal(t, "héllo\nwörld", b.Value())
	assert.False(t, b.IsModified())

	b.SetValue("abc")
	assert.Equal(t, "abc", b.Value())
	assert.True(t, b.IsModified())
}

func TestRuneBufferSelectionClamp(t *testing.T) {
	b := NewFromString("abcdef")

	b.SetSelection(2, 4, types.DirectionBackward)
	start, end, dir := b.Selection()
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)
	assert.Equal(t, types.DirectionBackward, dir)

	b.SetSelection(-3, 99, types.DirectionForward)
	start, end, _ = b.Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)

	b.SetSelection(5, 1, types.DirectionNone)
	start, end, _ = b.Selection()
	assert.Equal(t, 1, start)
	assert.Equal(t, 5, end)
}

func TestRuneBufferSetValueShrinksSelection(t *testing.T) {
	b := NewFromString("abcdef")
	b.SetSelection(4, 6, types.DirectionForward)

	b.SetValue("ab")
	start, end, _ := b.Selection()
	assert.Equal(t, 2, start)
	assert.Equal(t, 2, end)
}

func TestRuneBufferLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte("  hello\nworld"), 0644))

	b := New()
	require.NoError(t, b.Load(path))
	assert.Equal(t, "  hello\nworld", b.Value())
	assert.Equal(t, path, b.FilePath())
	assert.False(t, b.IsModified())

	b.SetValue("changed")
	require.NoError(t, b.Save(""))
	assert.False(t, b.IsModified())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "changed", string(content))
}

func TestRuneBufferLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	b := NewFromString("old")
	require.NoError(t, b.Load(path))
	assert.Equal(t, "", b.Value())
	assert.Equal(t, path, b.FilePath())
}

func TestRuneBufferSaveWithoutPath(t *testing.T) {
	b := NewFromString("x")
	err := b.Save("")
	require.ErrorIs(t, err, ErrNoPath)
}
