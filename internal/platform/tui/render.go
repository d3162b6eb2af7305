package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mystery-maze/internal/core"
)

// ansiColors maps core.Color to terminal color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.Color("4"),
	core.ColorMagenta:     lipgloss.Color("5"),
	core.ColorCyan:        lipgloss.Color("6"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorGray:        lipgloss.Color("245"),
	core.ColorDarkGray:    lipgloss.Color("238"),
	core.ColorBlack:       lipgloss.Color("0"),
}

// lipglossStyle converts a cell style to a lipgloss style.
func lipglossStyle(s core.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := ansiColors[s.Fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := ansiColors[s.Bg]; ok {
		style = style.Background(c)
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Style]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startStyle := cell.Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Style != startStyle {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startStyle == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[startStyle]
			if !ok {
				style = lipglossStyle(startStyle)
				styles[startStyle] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
