package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// colorStyles holds one lipgloss style per palette color. Built once at
// startup and read-only afterwards, so concurrent SSH sessions can render
// without synchronization.
var colorStyles = buildStyles(
	core.ColorRed,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightCyan,
	core.ColorBrightWhite,
	core.ColorGray,
)

// buildStyles derives the lipgloss style for each palette color from the
// ANSI code the color itself carries.
func buildStyles(palette ...core.Color) map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for _, c := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped into one styled run to
// minimize ANSI escape sequences.
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
