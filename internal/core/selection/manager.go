package selection

import (
	"github.com/bethropolis/composer/internal/core/text"
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/types"
	"github.com/bethropolis/composer/internal/utils"
)

// Motion is a caret movement.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionDocStart
	MotionDocEnd
)

var motionNames = map[Motion]string{
	MotionLeft:     "left",
	MotionRight:    "right",
	MotionUp:       "up",
	MotionDown:     "down",
	MotionHome:     "home",
	MotionEnd:      "end",
	MotionDocStart: "doc-start",
	MotionDocEnd:   "doc-end",
}

func (m Motion) String() string {
	if name, ok := motionNames[m]; ok {
		return name
	}
	return "unknown"
}

// Manager computes caret and selection movement over a TextArea.
// It never mutates the surface; callers apply the result with Operations.Select.
type Manager struct {
	textArea *text.TextArea
}

// NewManager creates a selection manager reading from textArea.
func NewManager(textArea *text.TextArea) *Manager {
	return &Manager{textArea: textArea}
}

// Move collapses c and moves the caret. Left and Right on a selection
// collapse to its near edge without moving further.
func (m *Manager) Move(c types.Cursor, motion Motion) types.Cursor {
	if c.IsSelection() {
		switch motion {
		case MotionLeft:
			return types.NewCaret(c.Start)
		case MotionRight:
			return types.NewCaret(c.End)
		}
	}
	return types.NewCaret(m.target(c.Head(), motion))
}

// Extend moves the active end of c and keeps the anchor fixed.
func (m *Manager) Extend(c types.Cursor, motion Motion) types.Cursor {
	anchor := c.Anchor()
	head := m.target(c.Head(), motion)

	var result types.Cursor
	switch {
	case head < anchor:
		result = types.NewCursor(head, anchor, types.DirectionBackward)
	case head > anchor:
		result = types.NewCursor(anchor, head, types.DirectionForward)
	default:
		result = types.NewCaret(head)
	}
	logger.DebugTagf("selection", "Extend %v: %v -> %v", motion, c, result)
	return result
}

// SelectAll returns a forward cursor over the whole value.
func (m *Manager) SelectAll() types.Cursor {
	n := m.textArea.Len()
	if n == 0 {
		return types.NewCaret(0)
	}
	return types.NewCursor(0, n, types.DirectionForward)
}

// target returns where the caret at offset lands after motion.
func (m *Manager) target(offset int, motion Motion) int {
	caret := types.NewCaret(offset)
	switch motion {
	case MotionLeft:
		return utils.PrevGraphemeBoundary(m.textArea.Surface().Value(), offset)
	case MotionRight:
		return utils.NextGraphemeBoundary(m.textArea.Surface().Value(), offset)
	case MotionUp:
		line, ok := m.textArea.PrevLine(caret)
		if !ok {
			return 0
		}
		return m.column(line, offset)
	case MotionDown:
		line, ok := m.textArea.NextLine(caret)
		if !ok {
			return m.textArea.Len()
		}
		return m.column(line, offset)
	case MotionHome:
		return m.textArea.LineBeginIndex(caret)
	case MotionEnd:
		return m.textArea.LineEndIndex(caret)
	case MotionDocStart:
		return 0
	case MotionDocEnd:
		return m.textArea.Len()
	}
	return offset
}

// column places the caret on line at the same rune column offset has on its own line.
func (m *Manager) column(line types.Cursor, offset int) int {
	col := offset - m.textArea.LineBeginIndex(types.NewCaret(offset))
	return min(line.Start+col, line.End)
}
