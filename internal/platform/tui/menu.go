package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stg/internal/sim"
)

// Menu styles. The selected button gets a red border, the rest stay muted.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Foreground(lipgloss.Color("250")).
			Width(16).
			Align(lipgloss.Center).
			Padding(1, 0).
			Margin(0, 1)

	selectedButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("9")).
				Foreground(lipgloss.Color("15")).
				Bold(true)
)

// renderMenu draws the Start or Result menu centered in a w x h area.
func renderMenu(menu sim.Menu, score, w, h int) string {
	buttons := make([]string, 0, 2)
	for _, opt := range menu.Options() {
		style := buttonStyle
		if menu.IsSelected(opt) {
			style = selectedButtonStyle
		}
		buttons = append(buttons, style.Render(opt.Label()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	block := row
	if menu.Kind == sim.MenuResult {
		block = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Result"),
			scoreStyle.Render(fmt.Sprintf("Score: %d", score)),
			row,
		)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, block)
}
