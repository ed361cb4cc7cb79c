package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/sim"
)

// KeyMap defines the key bindings for the shooter.
// Space is both fire (Playing) and continue (Result).
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Fire    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Actions translates a key message into the actions it triggers.
// Quit is reported like any other action; the model decides what to do with it.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Up):
		return []core.Action{core.ActionUp}
	case key.Matches(msg, k.Down):
		return []core.Action{core.ActionDown}
	case key.Matches(msg, k.Fire):
		return []core.Action{core.ActionFire, core.ActionContinue}
	case key.Matches(msg, k.Confirm):
		return []core.Action{core.ActionConfirm}
	}
	return nil
}

// stateHelp adapts the key map to the help bubble for one game state.
type stateHelp struct {
	keys  KeyMap
	state sim.GameState
}

// ShortHelp returns the bindings that matter in the current state.
func (h stateHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.state {
	case sim.StatePlaying:
		return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Fire, k.Quit}
	case sim.StateResult:
		cont := k.Fire
		cont.SetHelp("space", "continue")
		return []key.Binding{k.Left, k.Right, k.Confirm, cont, k.Quit}
	default:
		return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (h stateHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
