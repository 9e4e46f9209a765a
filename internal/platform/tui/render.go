package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

// palette maps core.Color to lipgloss styles bound to one renderer, so SSH
// sessions get styles matching their own terminal.
type palette map[core.Color]lipgloss.Style

// newPalette builds the color styles for a renderer.
func newPalette(r *lipgloss.Renderer) palette {
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return palette{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          color("1"),
		core.ColorGreen:        color("2"),
		core.ColorYellow:       color("3"),
		core.ColorMagenta:      color("5"),
		core.ColorWhite:        color("7"),
		core.ColorBrightGreen:  color("10"),
		core.ColorBrightYellow: color("11"),
		core.ColorBrightWhite:  color("15").Bold(true),
		core.ColorOrange:       color("208"),
		core.ColorSkyBlue:      color("117"),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
