package sim

// GameState is the top-level flow state.
type GameState int

const (
	StateStart GameState = iota
	StatePlaying
	StateResult
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// MenuKind tells the two menus apart.
type MenuKind int

const (
	MenuStart MenuKind = iota
	MenuResult
)

// MenuOption is one selectable menu entry.
type MenuOption int

const (
	OptionStart MenuOption = iota
	OptionExit
	OptionRestart
	OptionBackToTitle
)

// Label returns the text shown on the option's button.
func (o MenuOption) Label() string {
	switch o {
	case OptionStart:
		return "Start"
	case OptionExit:
		return "Exit"
	case OptionRestart:
		return "Restart"
	case OptionBackToTitle:
		return "Back to Title"
	default:
		return "?"
	}
}

// Menu is the selection state of the Start or Result menu.
// Presentation only reads it; Game owns every mutation.
type Menu struct {
	Kind     MenuKind
	Selected MenuOption
}

// newMenu returns a menu with its first option selected.
func newMenu(kind MenuKind) *Menu {
	m := &Menu{Kind: kind}
	m.Selected = m.Options()[0]
	return m
}

// Options returns the menu's options left to right.
func (m Menu) Options() []MenuOption {
	if m.Kind == MenuResult {
		return []MenuOption{OptionRestart, OptionBackToTitle}
	}
	return []MenuOption{OptionStart, OptionExit}
}

// IsSelected reports whether o is the highlighted option.
func (m Menu) IsSelected(o MenuOption) bool {
	return m.Selected == o
}
