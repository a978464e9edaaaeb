package utils

import (
	"github.com/rivo/uniseg"
)

// GraphemeBoundaries returns the rune offsets at which grapheme clusters of s
// begin, followed by the rune length of s. An empty string yields [0].
func GraphemeBoundaries(s string) []int {
	boundaries := []int{0}
	offset := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		offset += len(g.Runes())
		boundaries = append(boundaries, offset)
	}
	return boundaries
}

// PrevGraphemeBoundary returns the last cluster boundary strictly before offset, or 0.
func PrevGraphemeBoundary(s string, offset int) int {
	prev := 0
	for _, b := range GraphemeBoundaries(s) {
		if b >= offset {
			break
		}
		prev = b
	}
	return prev
}

// NextGraphemeBoundary returns the first cluster boundary strictly after offset,
// or the rune length of s.
func NextGraphemeBoundary(s string, offset int) int {
	boundaries := GraphemeBoundaries(s)
	for _, b := range boundaries {
		if b > offset {
			return b
		}
	}
	return boundaries[len(boundaries)-1]
}

// DisplayWidth returns the number of terminal cells s occupies, expanding
// tabs to the next multiple of tabWidth.
func DisplayWidth(s string, tabWidth int) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if g.Str() == "\t" {
			width += TabAdvance(width, tabWidth)
			continue
		}
		width += g.Width()
	}
	return width
}

// TabAdvance returns how many cells a tab at column col occupies.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		return 1
	}
	return tabWidth - col%tabWidth
}
