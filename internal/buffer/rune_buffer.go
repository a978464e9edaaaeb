// internal/buffer/rune_buffer.go
package buffer

import (
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/composer/internal/types"
)

// ErrNoPath is returned by Save when neither the buffer nor the caller supplies a path.
var ErrNoPath = errors.New("no file path specified for saving")

// RuneBuffer keeps its value as a rune slice so that offsets index code points.
// It is owned by a single UI loop and is not safe for concurrent mutation.
type RuneBuffer struct {
	runes     []rune
	selStart  int
	selEnd    int
	direction types.Direction
	filePath  string
	modified  bool // Track if buffer has unsaved changes
}

// New creates an empty RuneBuffer.
func New() *RuneBuffer {
	return &RuneBuffer{}
}

// NewFromString creates a buffer holding s with the caret at offset 0.
func NewFromString(s string) *RuneBuffer {
	return &RuneBuffer{runes: []rune(s)}
}

// Load reads a file into the buffer. Replaces existing content.
// A missing file yields an empty buffer bound to filePath.
func (b *RuneBuffer) Load(filePath string) error {
	b.modified = false

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			b.runes = nil
			b.filePath = filePath
			b.SetSelection(0, 0, types.DirectionNone)
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}

	b.runes = []rune(string(content))
	b.filePath = filePath
	b.SetSelection(0, 0, types.DirectionNone)
	return nil
}

// Save writes the buffer content to filePath, or to the stored path when empty.
func (b *RuneBuffer) Save(filePath string) error {
	path := b.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		return ErrNoPath
	}

	if err := os.WriteFile(path, []byte(string(b.runes)), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	b.filePath = path
	b.modified = false
	return nil
}

// FilePath returns the path the buffer was loaded from or last saved to.
func (b *RuneBuffer) FilePath() string {
	return b.filePath
}

// IsModified returns true if the buffer has unsaved changes.
func (b *RuneBuffer) IsModified() bool {
	return b.modified
}

// Len returns the value length in runes.
func (b *RuneBuffer) Len() int {
	return len(b.runes)
}

// Value returns the full text.
func (b *RuneBuffer) Value() string {
	return string(b.runes)
}

// SetValue replaces the full text. The selection is clamped to the new length.
func (b *RuneBuffer) SetValue(value string) {
	b.runes = []rune(value)
	b.modified = true
	b.SetSelection(b.selStart, b.selEnd, b.direction)
}

// Selection returns the live selection.
func (b *RuneBuffer) Selection() (start, end int, direction types.Direction) {
	return b.selStart, b.selEnd, b.direction
}

// SetSelection sets the live selection, clamping offsets into [0, Len()]
// and swapping them when start > end.
func (b *RuneBuffer) SetSelection(start, end int, direction types.Direction) {
	start = b.clamp(start)
	end = b.clamp(end)
	if start > end {
		start, end = end, start
	}
	b.selStart, b.selEnd, b.direction = start, end, direction
}

func (b *RuneBuffer) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.runes) {
		return len(b.runes)
	}
	return offset
}

// Ensure RuneBuffer satisfies the Buffer interface
var _ Buffer = (*RuneBuffer)(nil)
