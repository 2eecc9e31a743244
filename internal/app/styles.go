package app

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles for plain command output.
var Styles = newStyles(os.Getenv(EnvNoColor) != "")

type styles struct {
	Header  lipgloss.Style
	Key     lipgloss.Style
	Dim     lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Bullet  lipgloss.Style
}

func newStyles(noColor bool) styles {
	plain := lipgloss.NewStyle()
	if noColor {
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		Header:  plain.Bold(true),
		Key:     plain.Foreground(lipgloss.Color("6")),
		Dim:     plain.Foreground(lipgloss.Color("8")),
		Success: plain.Foreground(lipgloss.Color("2")),
		Error:   plain.Foreground(lipgloss.Color("1")),
		Bullet:  plain.Foreground(lipgloss.Color("8")),
	}
}
