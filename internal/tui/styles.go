package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mrourke/netprobe/internal/version"
)

// Application branding constants
const (
	AppName   = "NETPROBE"
	GitHubURL = "github.com/mrourke/netprobe"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#5FD7FF") // Cyan
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	// Neutral colors
	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Common styles
var (
	// Sidebar title style
	SidebarTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Sidebar version line style
	SidebarVersionStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Menu item style (unselected)
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Menu item style (selected)
	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	// Menu hint style (the second line under each entry)
	MenuHintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Main pane border style
	MainPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Main pane title style
	MainTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Output body style
	OutputStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Modal prompt question style
	PromptStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// Modal hint style
	PromptHintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Command line style (the typed command buffer)
	CommandLineStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// Command line prompt marker style
	CommandMarkStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	// Status bar style
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// statusStyle returns the styled status label for the bar. Each tag maps to
// a fixed color so the bar reads at a glance.
func statusStyle(tag StatusTag) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch tag {
	case StatusRunning, StatusInput:
		return base.Foreground(WarningColor)
	case StatusDone, StatusReady:
		return base.Foreground(SecondaryColor)
	case StatusError, StatusBadRange, StatusInputError:
		return base.Foreground(ErrorColor)
	case StatusDebug, StatusHelp:
		return base.Foreground(AccentColor)
	default:
		return base.Foreground(SubtleColor)
	}
}
