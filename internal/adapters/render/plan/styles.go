package plan

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	semester   lipgloss.Style
	summer     lipgloss.Style
	course     lipgloss.Style
	prereq     lipgloss.Style
	overCap    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	areaKey    lipgloss.Style
	met        lipgloss.Style
	unmet      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		semester:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		summer:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		course:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		prereq:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		overCap:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		areaKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		met:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		unmet:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
