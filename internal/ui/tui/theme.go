package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Wall       lipgloss.Style
	Empty      lipgloss.Style
	Start      lipgloss.Style
	End        lipgloss.Style
	Checkpoint lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Wall:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Empty:      lipgloss.NewStyle().Faint(true),
		Start:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		End:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Checkpoint: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
}
