// internal/tui/drawing.go
package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/composer/internal/types"
	"github.com/bethropolis/composer/internal/utils"
)

// Viewport tracks the first visible line of the text area.
type Viewport struct {
	Top       int
	ScrollOff int
}

// ScrollTo adjusts Top so line stays at least ScrollOff lines from either
// edge of a view height rows tall.
func (v *Viewport) ScrollTo(line, height, totalLines int) {
	if height <= 0 {
		return
	}
	off := min(v.ScrollOff, (height-1)/2)
	if line-off < v.Top {
		v.Top = line - off
	}
	if line+off >= v.Top+height {
		v.Top = line + off - height + 1
	}
	v.Top = max(0, min(v.Top, totalLines-1))
}

// Styles used to draw the text area.
type Styles struct {
	Default   tcell.Style
	Selection tcell.Style
}

// DefaultStyles draws the selection in reverse video.
func DefaultStyles() Styles {
	return Styles{
		Default:   tcell.StyleDefault,
		Selection: tcell.StyleDefault.Reverse(true),
	}
}

// HeadPosition returns the line and display column of offset in value.
func HeadPosition(value string, offset, tabWidth int) (line, col int) {
	r := []rune(value)
	offset = max(0, min(offset, len(r)))
	before := string(r[:offset])
	line = strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return line, utils.DisplayWidth(before[lineStart:], tabWidth)
}

// DrawText draws the visible lines of value into the top height rows and
// places the terminal cursor at the selection head.
func DrawText(t *TUI, value string, sel types.Cursor, view *Viewport, height, tabWidth int, styles Styles) {
	width, _ := t.Size()
	if height <= 0 || width <= 0 {
		return
	}
	lines := strings.Split(value, "\n")

	headLine, headCol := HeadPosition(value, sel.Head(), tabWidth)
	view.ScrollTo(headLine, height, len(lines))

	offset := 0 // rune offset of the current line's first rune
	for i, line := range lines {
		lineLen := len([]rune(line))
		screenY := i - view.Top
		if screenY >= height {
			break
		}
		if screenY >= 0 {
			for x := 0; x < width; x++ {
				t.screen.SetContent(x, screenY, ' ', nil, styles.Default)
			}
			x := drawLine(t.screen, line, offset, screenY, width, tabWidth, sel, styles)
			// Show a selected line break as one highlighted cell.
			newline := offset + lineLen
			if i < len(lines)-1 && newline >= sel.Start && newline < sel.End && x < width {
				t.screen.SetContent(x, screenY, ' ', nil, styles.Selection)
			}
		}
		offset += lineLen + 1
	}
	for y := len(lines) - view.Top; y < height; y++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, y, ' ', nil, styles.Default)
		}
	}

	cursorY := headLine - view.Top
	if cursorY < 0 || cursorY >= height || headCol >= width {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(headCol, cursorY)
}

// drawLine draws one line starting at rune offset and returns the next free column.
func drawLine(screen tcell.Screen, line string, offset, y, width, tabWidth int, sel types.Cursor, styles Styles) int {
	gr := uniseg.NewGraphemes(line)
	x := 0
	runeIndex := offset
	for gr.Next() && x < width {
		clusterRunes := gr.Runes()
		style := styles.Default
		if runeIndex >= sel.Start && runeIndex < sel.End {
			style = styles.Selection
		}

		if clusterRunes[0] == '\t' {
			advance := utils.TabAdvance(x, tabWidth)
			for i := 0; i < advance && x+i < width; i++ {
				screen.SetContent(x+i, y, ' ', nil, style)
			}
			x += advance
		} else {
			clusterWidth := gr.Width()
			screen.SetContent(x, y, clusterRunes[0], clusterRunes[1:], style)
			// Fill remaining cells for wide characters
			for cw := 1; cw < clusterWidth && x+cw < width; cw++ {
				screen.SetContent(x+cw, y, ' ', nil, style)
			}
			x += clusterWidth
		}
		runeIndex += len(clusterRunes)
	}
	return x
}
