package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemeBoundaries(t *testing.T) {
	assert.Equal(t, []int{0}, GraphemeBoundaries(""))
	assert.Equal(t, []int{0, 1, 2, 3}, GraphemeBoundaries("abc"))
	// e + combining acute is one cluster of two runes.
	assert.Equal(t, []int{0, 2, 3}, GraphemeBoundaries("e\u0301x"))
}

func TestGraphemeSteps(t *testing.T) {
	s := "ae\u0301b"
	assert.Equal(t, 1, NextGraphemeBoundary(s, 0))
	assert.Equal(t, 3, NextGraphemeBoundary(s, 1))
	assert.Equal(t, 4, NextGraphemeBoundary(s, 4))
	assert.Equal(t, 1, PrevGraphemeBoundary(s, 3))
	assert.Equal(t, 0, PrevGraphemeBoundary(s, 1))
	assert.Equal(t, 0, PrevGraphemeBoundary(s, 0))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, DisplayWidth("abc", 4))
	assert.Equal(t, 4, DisplayWidth("\t", 4))
	assert.Equal(t, 4, DisplayWidth("ab\t", 4))
	assert.Equal(t, 2, DisplayWidth("世", 4))
	assert.Equal(t, 1, DisplayWidth("e\u0301", 4))
}
