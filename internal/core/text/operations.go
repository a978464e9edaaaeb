package text

import (
	"unicode/utf8"

	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/types"
)

// Operations is the minimal set of effects editing logic needs on a surface.
type Operations interface {
	// Select applies the cursor's range and direction to the live selection.
	Select(c types.Cursor)
	// Deselect collapses the live selection: to Start for backward cursors, otherwise to End.
	Deselect(c types.Cursor)
	// Insert replaces [c.Start, c.End) with text and returns the cursor spanning
	// the inserted text, keeping c.Direction.
	Insert(c types.Cursor, text string) types.Cursor
}

// TextAreaOperations implements Operations directly against a surface.
type TextAreaOperations struct {
	surface buffer.Surface
}

// NewOperations creates TextAreaOperations mutating surface.
func NewOperations(surface buffer.Surface) *TextAreaOperations {
	return &TextAreaOperations{surface: surface}
}

// CursorFrom snapshots the surface's live selection.
func CursorFrom(surface buffer.Surface) types.Cursor {
	start, end, direction := surface.Selection()
	return types.NewCursor(start, end, direction)
}

// Select passes the direction through so shift-extension keeps its active end.
func (o *TextAreaOperations) Select(c types.Cursor) {
	o.surface.SetSelection(c.Start, c.End, c.Direction)
}

// Deselect picks the collapse edge from c.Direction only.
func (o *TextAreaOperations) Deselect(c types.Cursor) {
	if c.Direction == types.DirectionBackward {
		o.surface.SetSelection(c.Start, c.Start, types.DirectionNone)
		return
	}
	o.surface.SetSelection(c.End, c.End, types.DirectionNone)
}

// Insert replaces the range and leaves the live caret after the inserted text.
// Out-of-range offsets are clamped before slicing.
func (o *TextAreaOperations) Insert(c types.Cursor, text string) types.Cursor {
	r := []rune(o.surface.Value())
	start, end := clampRange(c.Start, c.End, len(r))

	value := make([]rune, 0, len(r)-(end-start)+len(text))
	value = append(value, r[:start]...)
	value = append(value, []rune(text)...)
	value = append(value, r[end:]...)
	o.surface.SetValue(string(value))

	inserted := start + utf8.RuneCountInString(text)
	o.surface.SetSelection(inserted, inserted, types.DirectionNone)

	logger.DebugTagf("text", "Insert [%d:%d) -> %d runes", start, end, inserted-start)
	return types.NewCursor(start, inserted, c.Direction)
}

var _ Operations = (*TextAreaOperations)(nil)
