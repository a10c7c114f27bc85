package receipts

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	receipt lipgloss.Style
	detail  lipgloss.Style
	amount  lipgloss.Style
	pending lipgloss.Style
	paid    lipgloss.Style
	warning lipgloss.Style
	empty   lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		receipt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		amount:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		paid:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
	}
}
