package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

// ------- styling helpers (Lip Gloss) -------
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true)
	MutedStyle    = lipgloss.NewStyle().Faint(true)
	AccentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	HelpStyle     = lipgloss.NewStyle().Faint(true)
	BadgeStyle    = lipgloss.NewStyle().Faint(true).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	DropTargetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

var priorityStyles = map[model.Priority]lipgloss.Style{
	model.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	model.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	model.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	model.PriorityLow:      lipgloss.NewStyle().Faint(true),
}

// PriorityPill renders the colored priority marker for a card.
func PriorityPill(p model.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		style = MutedStyle
	}
	return style.Render("[" + string(p) + "]")
}
