package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: component names, paths, commands.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "succeeded" stage status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" stage status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" stage status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorMagenta is used for the banner.
	ColorMagenta = lipgloss.Color("213")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleBanner styles the welcome and completion banners.
	StyleBanner = lipgloss.NewStyle().Bold(true).Foreground(ColorMagenta)
)

// Stage status constants, shared with the process runner.
const (
	StatusPending   = "pending"
	StatusSkipped   = "skipped"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a stage status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusSucceeded:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusPending:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatBanner renders a banner line.
func FormatBanner(msg string) string {
	return StyleBanner.Render(msg)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}
