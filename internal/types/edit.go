package types

import "unicode/utf8"

// EditInfo describes a single replacement applied to a surface value.
// Offsets are rune offsets in the text before (Start, OldEnd) and after (NewEnd) the edit.
type EditInfo struct {
	Start   int    // Where the replaced range begins
	OldEnd  int    // End of the replaced range in the old text
	NewEnd  int    // End of the inserted text in the new text
	OldText string // Text that was replaced
	NewText string // Text that was inserted
}

// NewEditInfo builds an EditInfo for replacing oldText at start with newText.
func NewEditInfo(start int, oldText, newText string) EditInfo {
	return EditInfo{
		Start:   start,
		OldEnd:  start + utf8.RuneCountInString(oldText),
		NewEnd:  start + utf8.RuneCountInString(newText),
		OldText: oldText,
		NewText: newText,
	}
}

// Delta returns the change in value length, in runes.
func (e EditInfo) Delta() int {
	return e.NewEnd - e.OldEnd
}

// Inverse returns the edit that undoes e.
func (e EditInfo) Inverse() EditInfo {
	return NewEditInfo(e.Start, e.NewText, e.OldText)
}
