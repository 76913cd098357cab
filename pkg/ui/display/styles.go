package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"})
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.AdaptiveColor{Light: "#303030", Dark: "#D0D0D0"})
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8A8A8A"})
)

// ConfigureColor turns off colors when the environment asks for it
// (NO_COLOR, CLICOLOR=0) or when color is false.
func ConfigureColor(color bool) {
	if color && !termenv.EnvNoColor() {
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableColor()
}

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"})

// FormatError renders err the way fatal errors are shown to the operator.
func FormatError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
