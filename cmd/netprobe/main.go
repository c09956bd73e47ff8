// Netprobe is an interactive network diagnostics console.
//
// It provides ping, DNS lookups, HTTP checks, traceroute, TCP port
// scanning, WebSocket handshake checks, and mDNS service discovery
// behind a full-screen terminal interface with a navigable menu and a
// typed command line.
//
// Usage:
//
//	netprobe [command] [flags]
//
// Running without arguments launches the interactive console. Each probe
// is also available as a direct subcommand for scripting.
// See 'netprobe --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrourke/netprobe/internal/config"
	"github.com/mrourke/netprobe/internal/logging"
	"github.com/mrourke/netprobe/internal/tui"
	"github.com/mrourke/netprobe/internal/ui"
	"github.com/mrourke/netprobe/internal/version"
)

func main() {
	logging.InitializeFromEnv()
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "netprobe",
	Short: "Interactive network diagnostics console",
	Long: `A full-screen terminal console for quick network diagnostics.

Provides ping, DNS lookups, HTTP checks, traceroute, TCP port scanning,
WebSocket handshake checks, and mDNS service discovery.

If no command is specified, the interactive console launches on the
alternate screen. Every probe is also available as a direct subcommand.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsTerminal() {
			return fmt.Errorf("stdout is not a terminal; use a direct subcommand instead (see --help)")
		}
		return tui.Run(loadSettings())
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("netprobe %s (commit: %s)\n", version.Version, version.Commit)
	},
}

// loadSettings reads the settings file named by --config, or the default
// platform path. Load degrades to defaults on a missing file, so first
// runs work without any setup; a malformed file is reported and ignored.
func loadSettings() *config.Settings {
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring settings file: %v\n", err)
		return config.Default()
	}
	return settings
}
