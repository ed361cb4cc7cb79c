package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// sprite is how one entity category is drawn.
type sprite struct {
	glyph rune
	color core.Color
}

var sprites = map[sim.Category]sprite{
	sim.CategoryPlayer:     {'█', core.ColorCyan},
	sim.CategoryEnemy:      {'▓', core.ColorRed},
	sim.CategoryPlayerShot: {'*', core.ColorBrightYellow},
	sim.CategoryEnemyShot:  {'•', core.ColorMagenta},
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// projection maps world boxes (+Y up) onto screen cells (+Y down).
type projection struct {
	field  core.Box
	view   core.Rect
	sx, sy float64 // cells per world unit
}

func newProjection(field core.Box, view core.Rect) projection {
	return projection{
		field: field,
		view:  view,
		sx:    float64(view.W) / field.Size.X,
		sy:    float64(view.H) / field.Size.Y,
	}
}

// rect returns the cells covered by b. Every box covers at least one cell.
func (p projection) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	fieldLo, fieldHi := p.field.Min(), p.field.Max()

	x0 := int(math.Floor((lo.X - fieldLo.X) * p.sx))
	x1 := int(math.Ceil((hi.X - fieldLo.X) * p.sx))
	y0 := int(math.Floor((fieldHi.Y - hi.Y) * p.sy))
	y1 := int(math.Ceil((fieldHi.Y - lo.Y) * p.sy))
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)

	return core.NewRect(p.view.X+x0, p.view.Y+y0, x1-x0, y1-y0)
}

// fieldFrame returns the bordered playfield area for a screen of w x h cells,
// leaving the top row for the HUD. Terminal cells are about twice as tall as
// wide, so the field keeps its world aspect ratio at two columns per row.
func fieldFrame(field core.Box, w, h int) core.Rect {
	rows := h - 3 // HUD row and two border rows
	cols := w - 2
	if rows < 1 || cols < 1 {
		return core.Rect{}
	}

	aspect := 2 * field.Size.X / field.Size.Y
	if float64(cols) > float64(rows)*aspect {
		cols = int(float64(rows) * aspect)
	} else {
		rows = int(float64(cols) / aspect)
	}
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)

	return core.NewRect((w-cols-2)/2, 1, cols+2, rows+2)
}

const tooSmall = "terminal too small"

// drawPlayfield draws the HUD and every entity of snap into dst.
func drawPlayfield(dst *core.Screen, snap sim.Snapshot, field core.Box) {
	dst.Clear()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	frame := fieldFrame(field, dst.Width(), dst.Height())
	if frame.W == 0 {
		dst.DrawTextCentered(dst.Height()/2, tooSmall)
		return
	}
	dst.DrawBox(frame, core.ColorGray)

	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	proj := newProjection(field, inner)
	for _, e := range snap.Entities {
		r := proj.rect(e.Box())
		if !r.Intersects(inner) {
			continue
		}
		sp := sprites[e.Category]
		dst.DrawRect(r.Clip(inner), sp.glyph, sp.color)
	}
}
