package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorTurquoise: lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
	core.ColorTomato:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDimGray:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	core.ColorKhaki:     lipgloss.NewStyle().Foreground(lipgloss.Color("186")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
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
