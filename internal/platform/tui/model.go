package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/sim"
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	game     *sim.Game
	screen   *core.Screen
	input    *InputTracker
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	quitting bool
}

// NewModel creates a model with a fresh game in the Start state.
// A zero seed in rt is replaced by the current time.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:    sim.New(cfg, rt.Seed, sim.WithLogger(logger)),
		screen:  core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-1, 1)),
		input:   NewInputTracker(cfg.Input.HoldTicks, cfg.Input.RepressTicks),
		keys:    DefaultKeyMap(),
		help:    h,
		runtime: rt,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickPeriod())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.input.Reset()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds key events to the input tracker. Quit ends the program
// from any state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	for _, a := range m.keys.Actions(msg) {
		m.input.Observe(a)
	}
	return m, nil
}

// handleTick advances the simulation by one fixed tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.input.Frame(), m.runtime.TickPeriod())
	if res.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickPeriod())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	var body string
	if snap.Menu != nil {
		body = renderMenu(*snap.Menu, snap.Score, m.screen.Width(), m.screen.Height())
	} else {
		drawPlayfield(m.screen, snap, m.game.Playfield())
		body = RenderScreen(m.screen)
	}

	footer := m.help.View(stateHelp{keys: m.keys, state: snap.State})
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// Game returns the session's game.
func (m Model) Game() *sim.Game {
	return m.game
}

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rt, logger),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
