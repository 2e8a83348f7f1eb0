package plot

import (
	"os"

	"charm.land/lipgloss/v2"
)

// Report palette.
var (
	colorCorrect = lipgloss.Color("#22C55E") // Green
	colorWrong   = lipgloss.Color("#F43F5E") // Rose
	colorDim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorDim)

	seriesStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(colorCorrect),
		lipgloss.NewStyle().Foreground(colorWrong),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")),
	}
)

// colorEnabled honors NO_COLOR for report output.
func colorEnabled() bool {
	return os.Getenv("NO_COLOR") == ""
}

func styled(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}
