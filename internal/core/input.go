package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow - move left, select first menu option
	ActionRight           // Right arrow - move right, select second menu option
	ActionUp              // Up arrow - move up
	ActionDown            // Down arrow - move down
	ActionFire            // Space - player shot
	ActionConfirm         // Enter - confirm menu selection
	ActionContinue        // Space - restart directly from the result screen
	ActionQuit            // Esc, Ctrl+C - close the program
)

// Actions lists every bindable action in declaration order.
var Actions = []Action{
	ActionLeft,
	ActionRight,
	ActionUp,
	ActionDown,
	ActionFire,
	ActionConfirm,
	ActionContinue,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionContinue:
		return "Continue"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
//
// Held is level-triggered: true for every tick the key is down.
// Pressed is edge-triggered: true only on the tick the key went from
// released to down.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press marks an action as newly pressed this frame. A pressed action is also held.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.Hold(a)
}

// Held returns true if the action is currently down.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed returns true if the action went down on this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}
