package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrourke/netprobe/internal/config"
	"github.com/mrourke/netprobe/internal/logging"
)

// Run starts the console on the alternate screen and blocks until the
// operator quits.
func Run(settings *config.Settings) error {
	logging.Info("starting console")
	p := tea.NewProgram(NewModel(nil, settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
