// Package intent implements indentation and context-aware newline insertion
// on top of a text.TextArea and text.Operations.
//
// Every method reads the current text through the TextArea, performs
// exactly one Operations.Insert and returns the cursor the caller should
// apply back to the surface.
package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/composer/internal/config"
	"github.com/bethropolis/composer/internal/core/text"
	"github.com/bethropolis/composer/internal/logger"
	"github.com/bethropolis/composer/internal/types"
)

// Intent indents and outdents lines by a fixed number of spaces.
type Intent struct {
	size     int
	str      string
	textArea *text.TextArea
	ops      text.Operations
}

// New creates an Intent with size spaces per indent level.
// A non-positive size falls back to config.DefaultTabWidth.
func New(size int, textArea *text.TextArea, ops text.Operations) *Intent {
	if size <= 0 {
		size = config.DefaultTabWidth
	}
	return &Intent{
		size:     size,
		str:      strings.Repeat(" ", size),
		textArea: textArea,
		ops:      ops,
	}
}

// Size returns the number of spaces per indent level.
func (in *Intent) Size() int { return in.size }

// Str returns one indent level.
func (in *Intent) Str() string { return in.str }

// LineIntent returns the leading whitespace of the line containing c.Start.
// For a cursor spanning several lines only the first line is read, and the
// result never crosses a newline.
func (in *Intent) LineIntent(c types.Cursor) string {
	return leadingSpace(in.textArea.Line(c))
}

// MoveForward indents every line touched by c.
func (in *Intent) MoveForward(c types.Cursor) types.Cursor {
	linesCursor := in.textArea.CursorLines(c)
	lines := strings.Split(in.textArea.Selection(linesCursor), "\n")

	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = in.str + line
	}
	in.ops.Insert(linesCursor, strings.Join(indented, "\n"))

	start := c.Start
	if c.Start != linesCursor.Start {
		start += in.size
	}
	end := c.End + len(lines)*in.size

	logger.DebugTagf("intent", "Indented %d line(s) at %d", len(lines), linesCursor.Start)
	return types.NewCursor(start, end, c.Direction)
}

// MoveBackward outdents every line touched by c. A line starting with a full
// indent level loses exactly that; any other line loses all leading whitespace.
func (in *Intent) MoveBackward(c types.Cursor) types.Cursor {
	linesCursor := in.textArea.CursorLines(c)
	lines := strings.Split(in.textArea.Selection(linesCursor), "\n")

	trimmed := make([]string, len(lines))
	trimmedContentLength := 0
	for i, line := range lines {
		if strings.HasPrefix(line, in.str) {
			trimmed[i] = line[len(in.str):]
		} else {
			trimmed[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
		}
		trimmedContentLength += utf8.RuneCountInString(line) - utf8.RuneCountInString(trimmed[i])
	}
	firstLineTrimLength := utf8.RuneCountInString(lines[0]) - utf8.RuneCountInString(trimmed[0])

	inserted := in.ops.Insert(linesCursor, strings.Join(trimmed, "\n"))

	start := max(c.Start-firstLineTrimLength, linesCursor.Start)
	// The end may not retreat past the start of its own, now shorter, line.
	lastLine := in.textArea.CursorLines(types.NewCaret(inserted.End))
	end := max(lastLine.Start, c.End-trimmedContentLength)

	logger.DebugTagf("intent", "Outdented %d line(s) at %d, removed %d", len(lines), linesCursor.Start, trimmedContentLength)
	return types.NewCursor(start, end, c.Direction)
}

// AddNewLine replaces the selection with a newline that keeps the current
// line's indentation.
func (in *Intent) AddNewLine(c types.Cursor) types.Cursor {
	inserted := in.ops.Insert(c, "\n"+in.LineIntent(c))
	return types.NewCaret(inserted.End)
}

// AddNextLine opens an indented line below the line containing c.
func (in *Intent) AddNextLine(c types.Cursor) types.Cursor {
	lineIntent := in.LineIntent(c)
	lineEnd := in.textArea.CursorLines(c).End
	inserted := in.ops.Insert(types.NewCaret(lineEnd), "\n"+lineIntent)
	return types.NewCaret(inserted.End)
}

// AddPreviousLine opens an indented line above the line containing c.
func (in *Intent) AddPreviousLine(c types.Cursor) types.Cursor {
	lineIntent := in.LineIntent(c)
	prevLine, ok := in.textArea.PrevLine(c)
	if !ok {
		in.ops.Insert(types.NewCaret(0), lineIntent+"\n")
		return types.NewCaret(utf8.RuneCountInString(lineIntent))
	}
	inserted := in.ops.Insert(types.NewCaret(prevLine.End), "\n"+lineIntent)
	return types.NewCaret(inserted.End)
}

// leadingSpace returns the whitespace prefix of the first line of s.
func leadingSpace(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == '\n' || !unicode.IsSpace(r)
	})
	if end < 0 {
		return s
	}
	return s[:end]
}
