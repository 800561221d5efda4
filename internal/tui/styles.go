package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	colorMuted = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	colorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}

	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorPrimary)
	selectedStyle    = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle       = lipgloss.NewStyle().Foreground(colorError)
	helpStyle        = lipgloss.NewStyle().Foreground(colorMuted)
)
