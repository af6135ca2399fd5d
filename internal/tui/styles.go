package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	highlightStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 4).Width(56)
)
