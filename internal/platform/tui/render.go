package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coin-runner/internal/core"
)

type cellColors struct {
	fg, bg color.RGBA
}

// styleCache memoizes one lipgloss style per foreground/background pair.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(fg, bg color.RGBA) lipgloss.Style {
	k := cellColors{fg, bg}
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(core.Hex(fg))).
		Background(lipgloss.Color(core.Hex(bg)))
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
