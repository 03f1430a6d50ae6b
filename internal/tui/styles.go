package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the tree view.
type Styles struct {
	Title    lipgloss.Style
	Mode     lipgloss.Style
	Dirty    lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Dragged  lipgloss.Style
	Path     lipgloss.Style
	DropLine lipgloss.Style
	DropInto lipgloss.Style
	Info     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Dialog   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Mode:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dirty:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Row:      lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Dragged:  lipgloss.NewStyle().Faint(true).Italic(true),
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		DropLine: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DropInto: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("10")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dialog:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
