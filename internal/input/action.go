// internal/input/action.go
package input

// Action represents a command or operation to be performed by the composer.
type Action int

// Define the set of possible composer actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionSave
	ActionUndo
	ActionRedo

	// --- Caret Movement ---
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line
	ActionMoveDocStart
	ActionMoveDocEnd

	// --- Selection ---
	ActionSelectLeft
	ActionSelectRight
	ActionSelectUp
	ActionSelectDown
	ActionSelectHome
	ActionSelectEnd
	ActionSelectDocStart
	ActionSelectDocEnd
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Enter, keeps indentation
	ActionInsertLineBelow    // Opens an indented line below
	ActionInsertLineAbove    // Opens an indented line above
	ActionIndent             // Tab
	ActionOutdent            // Shift+Tab
	ActionDeleteCharBackward // Backspace key
	ActionDeleteCharForward  // Delete key

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionSave:               "save",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveHome:           "move-home",
	ActionMoveEnd:            "move-end",
	ActionMoveDocStart:       "move-doc-start",
	ActionMoveDocEnd:         "move-doc-end",
	ActionSelectLeft:         "select-left",
	ActionSelectRight:        "select-right",
	ActionSelectUp:           "select-up",
	ActionSelectDown:         "select-down",
	ActionSelectHome:         "select-home",
	ActionSelectEnd:          "select-end",
	ActionSelectDocStart:     "select-doc-start",
	ActionSelectDocEnd:       "select-doc-end",
	ActionSelectAll:          "select-all",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "insert-newline",
	ActionInsertLineBelow:    "insert-line-below",
	ActionInsertLineAbove:    "insert-line-above",
	ActionIndent:             "indent",
	ActionOutdent:            "outdent",
	ActionDeleteCharBackward: "delete-backward",
	ActionDeleteCharForward:  "delete-forward",
	ActionCopy:               "copy",
	ActionCut:                "cut",
	ActionPaste:              "paste",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
