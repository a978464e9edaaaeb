// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/composer/internal/types"

// Surface is the live, mutable text a composer edits: a value plus a selection.
// Offsets are rune offsets into Value().
type Surface interface {
	Value() string
	SetValue(value string)
	Selection() (start, end int, direction types.Direction)
	SetSelection(start, end int, direction types.Direction)
}

// Buffer is a Surface that can be persisted to disk.
type Buffer interface {
	Surface
	Load(filePath string) error
	Save(filePath string) error
	FilePath() string
	IsModified() bool
}
