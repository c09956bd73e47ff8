package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for run-once command output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success marks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for run-once command output
var (
	// HeaderTitleStyle is for the probe title (e.g., "PORT SCAN")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderTargetStyle is for the target line under the title
	HeaderTargetStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// BodyStyle is for probe result text
	BodyStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	// SuccessTitleStyle is for the success footer line
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the failure footer line
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error detail text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				PaddingLeft(2)

	// HeaderBoxStyle wraps the header in a rounded border
	HeaderBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, clamped to the
// supported range. Non-terminal output gets the minimum.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return MinTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether stdout is attached to a terminal. The root
// command uses this to refuse to start the full-screen console on a pipe.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
