package input

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta
	ActionUndo
	ActionRestart
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// bindings maps raw key codes to actions. Multiple codes may point to the
// same Action (Vim keys, arrows, and WASD all move).
var bindings = map[string]Action{
	// Movement (Vim, arrows, WASD)
	"k":           ActionMoveUp,
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"j":           ActionMoveDown,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"h":           ActionMoveLeft,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"l":           ActionMoveRight,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,

	// Undo ("b" for back, as in the original key map)
	"b": ActionUndo,
	"u": ActionUndo,

	// Restart
	"r": ActionRestart,

	// Quit
	"q":      ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the bindings to a raw key code.
func MapToIntent(code string) Intent {
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
