package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	station   lipgloss.Style
	detail    lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	delivered lipgloss.Style
	rejected  lipgloss.Style
	failed    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		station:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Width(stationColumnWidth),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		delivered: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Width(statusColumnWidth),
		rejected:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Width(statusColumnWidth),
		failed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Width(statusColumnWidth),
	}
}
