package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

type browserStyles struct {
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Empty     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
}

func defaultBrowserStyles() browserStyles {
	return browserStyles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).MarginBottom(1),
		Selected:  lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Directory: lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true),
		File:      lipgloss.NewStyle().Foreground(ColorSecondary),
		Empty:     lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Status:    lipgloss.NewStyle().Foreground(ColorError),
		Help:      lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1),
	}
}
