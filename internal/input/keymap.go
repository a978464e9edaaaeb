// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to composer actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For modified rune bindings (Alt+o)
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	altRuneMap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		altRuneMap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionIndent
	p.keymap[tcell.KeyBacktab] = ActionOutdent
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionQuit

	// --- Shift extends the selection ---
	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionSelectUp
	shiftMap[tcell.KeyDown] = ActionSelectDown
	shiftMap[tcell.KeyLeft] = ActionSelectLeft
	shiftMap[tcell.KeyRight] = ActionSelectRight
	shiftMap[tcell.KeyHome] = ActionSelectHome
	shiftMap[tcell.KeyEnd] = ActionSelectEnd
	shiftMap[tcell.KeyBacktab] = ActionOutdent // Some terminals report Shift with Backtab
	p.modKeymap[tcell.ModShift] = shiftMap

	// --- Ctrl ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlA] = ActionSelectAll
	ctrlMap[tcell.KeyCtrlC] = ActionCopy
	ctrlMap[tcell.KeyCtrlX] = ActionCut
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlO] = ActionInsertLineBelow
	ctrlMap[tcell.KeyCtrlQ] = ActionQuit
	ctrlMap[tcell.KeyHome] = ActionMoveDocStart
	ctrlMap[tcell.KeyEnd] = ActionMoveDocEnd
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	ctrlShiftMap := make(Keymap)
	ctrlShiftMap[tcell.KeyHome] = ActionSelectDocStart
	ctrlShiftMap[tcell.KeyEnd] = ActionSelectDocEnd
	p.modKeymap[tcell.ModCtrl|tcell.ModShift] = ctrlShiftMap

	// --- Alt + rune ---
	p.altRuneMap['o'] = ActionInsertLineAbove
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// Ctrl+letter keys imply Ctrl whether or not the terminal reports the modifier.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && !isPlainControlKey(key) {
		if action, ok := p.modKeymap[tcell.ModCtrl][key]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	// 1. Check Modifier + Key combinations
	if mod != tcell.ModNone {
		if modKeyMap, modOk := p.modKeymap[mod]; modOk {
			if action, keyOk := modKeyMap[key]; keyOk {
				return ActionEvent{Action: action}
			}
		}
	}

	// 2. Alt + rune
	if key == tcell.KeyRune && mod&tcell.ModAlt != 0 {
		if action, ok := p.altRuneMap[runeVal]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	// 3. Plain runes; Shift only changes the rune itself
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	// 4. Simple Key mappings
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 5. No mapping found
	return ActionEvent{Action: ActionUnknown}
}

// isPlainControlKey reports keys that share a Ctrl code but are bound as
// ordinary keys: Tab (Ctrl+I), Enter (Ctrl+M) and Backspace (Ctrl+H).
func isPlainControlKey(key tcell.Key) bool {
	return key == tcell.KeyTab || key == tcell.KeyEnter || key == tcell.KeyBackspace
}
