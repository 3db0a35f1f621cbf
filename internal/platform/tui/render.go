package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// palette maps core colors onto lipgloss styles, indexed by the color value.
var palette = func() []lipgloss.Style {
	ansi := map[core.Color]string{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	}

	styles := make([]lipgloss.Style, int(core.ColorGray)+1)
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
	}
	for c, code := range ansi {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a screen buffer into a styled terminal string.
// Adjacent cells with the same color are grouped into one styled run to keep
// the ANSI escape overhead down at 60 FPS.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
