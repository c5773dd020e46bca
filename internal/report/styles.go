package report

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorSuccess = lipgloss.Color("34")  // Green
	colorWarning = lipgloss.Color("214") // Orange
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	recordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	fieldStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	kindStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	summaryStyle = lipgloss.NewStyle().
			Bold(true)
)

// Symbols for visual feedback.
const (
	symbolCheck  = "✓"
	symbolCross  = "✗"
	symbolBullet = "•"
)
