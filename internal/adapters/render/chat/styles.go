package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	agent      lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	notice     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	selected   lipgloss.Style
	user       lipgloss.Style
	assistant  lipgloss.Style
	emotion    lipgloss.Style
	mind       lipgloss.Style
	pending    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		agent:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		assistant:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		emotion:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		mind:       lipgloss.NewStyle().Faint(true).Italic(true),
		pending:    lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
