// internal/types/cursor.go
package types

import (
	"fmt"
	"strings"
)

// Direction tells which end of a selection is the active one.
type Direction int

const (
	DirectionNone     Direction = iota // Collapsed caret, no implied extension
	DirectionForward                   // Active end is End
	DirectionBackward                  // Active end is Start
)

// String returns the name used by text inputs for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// ParseDirection converts "forward", "backward" or "none" into a Direction.
// Anything unrecognised maps to DirectionNone.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward":
		return DirectionForward
	case "backward":
		return DirectionBackward
	default:
		return DirectionNone
	}
}

// Cursor is a snapshot of a selection range or caret.
// Start and End are rune offsets into the surface value, Start <= End.
// Cursor is an immutable value type; every transformation returns a new one.
type Cursor struct {
	Start     int
	End       int
	Direction Direction
}

// NewCursor creates a cursor. Callers guarantee 0 <= start <= end.
func NewCursor(start, end int, direction Direction) Cursor {
	return Cursor{Start: start, End: end, Direction: direction}
}

// NewCaret creates a collapsed cursor at offset.
func NewCaret(offset int) Cursor {
	return Cursor{Start: offset, End: offset, Direction: DirectionNone}
}

// IsSelection returns true if the cursor covers at least one rune.
func (c Cursor) IsSelection() bool {
	return c.Start != c.End
}

// Len returns the number of runes covered.
func (c Cursor) Len() int {
	return c.End - c.Start
}

// Head returns the active end: Start for backward selections, End otherwise.
func (c Cursor) Head() int {
	if c.Direction == DirectionBackward {
		return c.Start
	}
	return c.End
}

// Anchor returns the end that stays fixed while the selection is extended.
func (c Cursor) Anchor() int {
	if c.Direction == DirectionBackward {
		return c.End
	}
	return c.Start
}

// Collapse returns a caret at the active end.
func (c Cursor) Collapse() Cursor {
	return NewCaret(c.Head())
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if !c.IsSelection() {
		return fmt.Sprintf("Caret(%d)", c.Start)
	}
	return fmt.Sprintf("Cursor[%d:%d %s]", c.Start, c.End, c.Direction)
}
