// Package text implements line and selection queries over a text surface
// and the Operations that mutate it.
//
// Offsets are rune offsets into the surface value. Lines are delimited by
// '\n'; a "full-line cursor" starts at a line's first rune and ends at its
// terminating '\n' (or at end of text).
package text

import (
	"github.com/bethropolis/composer/internal/buffer"
	"github.com/bethropolis/composer/internal/types"
)

// TextArea answers read-only questions about a surface. It never mutates it.
type TextArea struct {
	surface buffer.Surface
}

// NewTextArea creates a TextArea reading from surface.
func NewTextArea(surface buffer.Surface) *TextArea {
	return &TextArea{surface: surface}
}

// Surface returns the underlying surface.
func (t *TextArea) Surface() buffer.Surface {
	return t.surface
}

func (t *TextArea) runes() []rune {
	return []rune(t.surface.Value())
}

// Len returns the value length in runes.
func (t *TextArea) Len() int {
	return len(t.runes())
}

// Selection returns the text between c.Start and c.End.
func (t *TextArea) Selection(c types.Cursor) string {
	r := t.runes()
	start, end := clampRange(c.Start, c.End, len(r))
	return string(r[start:end])
}

// LineBeginIndex returns the offset of the first rune of the line containing c.Start.
func (t *TextArea) LineBeginIndex(c types.Cursor) int {
	return lineBegin(t.runes(), c.Start)
}

// LineEndIndex returns the offset of the first '\n' at or after c.End,
// or the value length when there is none.
func (t *TextArea) LineEndIndex(c types.Cursor) int {
	return lineEnd(t.runes(), c.End)
}

// CursorLines expands c to cover every full line it touches.
func (t *TextArea) CursorLines(c types.Cursor) types.Cursor {
	r := t.runes()
	return types.NewCursor(lineBegin(r, c.Start), lineEnd(r, c.End), types.DirectionNone)
}

// Line returns the text of the full lines covered by c.
func (t *TextArea) Line(c types.Cursor) string {
	return t.Selection(t.CursorLines(c))
}

// PrevLine returns the full line before the line containing c.Start.
// ok is false when that line already begins at offset 0.
func (t *TextArea) PrevLine(c types.Cursor) (line types.Cursor, ok bool) {
	r := t.runes()
	begin := lineBegin(r, c.Start)
	if begin == 0 {
		return types.Cursor{}, false
	}
	// begin-1 is the '\n' terminating the previous line.
	prev := begin - 1
	return types.NewCursor(lineBegin(r, prev), lineEnd(r, prev), types.DirectionNone), true
}

// NextLine returns the full line after the line containing c.End.
// ok is false when that line already reaches the end of the text.
func (t *TextArea) NextLine(c types.Cursor) (line types.Cursor, ok bool) {
	r := t.runes()
	next := lineEnd(r, c.End) + 1
	if next > len(r) {
		return types.Cursor{}, false
	}
	return types.NewCursor(lineBegin(r, next), lineEnd(r, next), types.DirectionNone), true
}

// lineBegin returns one past the last '\n' strictly before offset, or 0.
func lineBegin(r []rune, offset int) int {
	if offset > len(r) {
		offset = len(r)
	}
	for i := offset - 1; i >= 0; i-- {
		if r[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// lineEnd returns the first '\n' at or after offset, or len(r).
func lineEnd(r []rune, offset int) int {
	if offset < 0 {
		offset = 0
	}
	for i := offset; i < len(r); i++ {
		if r[i] == '\n' {
			return i
		}
	}
	return len(r)
}

// clampRange bounds [start, end) to [0, n] and orders it.
func clampRange(start, end, n int) (int, int) {
	start = max(0, min(start, n))
	end = max(0, min(end, n))
	if start > end {
		start, end = end, start
	}
	return start, end
}
