package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: clinical blues with risk-level accents
var (
	Primary = lipgloss.Color("#2563EB") // Blue
	Accent  = lipgloss.Color("#0EA5E9") // Sky
	Success = lipgloss.Color("#16A34A") // Green
	Warning = lipgloss.Color("#D97706") // Amber
	Error   = lipgloss.Color("#DC2626") // Red
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(Error).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// RiskColor maps a classification label to its severity color.
func RiskColor(level string) color.Color {
	switch level {
	case "Low":
		return Success
	case "Medium":
		return Warning
	case "High":
		return Error
	default:
		return TextDim
	}
}
