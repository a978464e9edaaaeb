package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/composer/internal/types"
)

func newSimTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(sim)
	require.NoError(t, err)
	t.Cleanup(ui.Close)
	sim.SetSize(width, height)
	return ui, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	row := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		row = append(row, cells[y*width+x].Runes[0])
	}
	return string(row)
}

func TestDrawTextAndSelection(t *testing.T) {
	ui, sim := newSimTUI(t, 8, 3)
	view := &Viewport{}

	DrawText(ui, "ab\ncd", types.NewCursor(1, 4, types.DirectionForward), view, 3, 4, DefaultStyles())
	ui.Show()

	assert.Equal(t, "ab      ", rowText(sim, 0))
	assert.Equal(t, "cd      ", rowText(sim, 1))

	cells, width, _ := sim.GetContents()
	_, _, attr := cells[1].Style.Decompose()
	assert.NotZero(t, attr&tcell.AttrReverse, "b is selected")
	_, _, attr = cells[0].Style.Decompose()
	assert.Zero(t, attr&tcell.AttrReverse, "a is not selected")
	_, _, attr = cells[2].Style.Decompose()
	assert.NotZero(t, attr&tcell.AttrReverse, "selected newline is shown")
	_, _, attr = cells[width+1].Style.Decompose()
	assert.Zero(t, attr&tcell.AttrReverse, "d is past the end")

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestDrawTextExpandsTabs(t *testing.T) {
	ui, sim := newSimTUI(t, 8, 2)
	DrawText(ui, "\tx", types.NewCaret(2), &Viewport{}, 2, 4, DefaultStyles())
	ui.Show()

	assert.Equal(t, "    x   ", rowText(sim, 0))
	x, _, _ := sim.GetCursor()
	assert.Equal(t, 5, x)
}

func TestViewportScrollTo(t *testing.T) {
	v := &Viewport{ScrollOff: 1}
	v.ScrollTo(0, 4, 10)
	assert.Equal(t, 0, v.Top)

	v.ScrollTo(5, 4, 10)
	assert.Equal(t, 3, v.Top)

	v.ScrollTo(9, 4, 10)
	assert.Equal(t, 7, v.Top)

	v.ScrollTo(2, 4, 10)
	assert.Equal(t, 1, v.Top)
}

func TestHeadPosition(t *testing.T) {
	line, col := HeadPosition("ab\n\tc", 5, 4)
	assert.Equal(t, 1, line)
	assert.Equal(t, 5, col)

	line, col = HeadPosition("世x", 1, 4)
	assert.Equal(t, 0, line)
	assert.Equal(t, 2, col)
}
