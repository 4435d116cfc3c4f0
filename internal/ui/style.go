package ui

import "github.com/charmbracelet/lipgloss"

var (
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Muted renders secondary text, such as completed tasks.
func Muted(value string) string {
	return mutedStyle.Render(value)
}

// Overdue renders a lapsed reminder.
func Overdue(value string) string {
	return overdueStyle.Render(value)
}
