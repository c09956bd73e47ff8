package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrourke/netprobe/internal/discovery"
	"github.com/mrourke/netprobe/internal/probes"
	"github.com/mrourke/netprobe/internal/ui"
)

// Command flags
var (
	configPath      string
	discoverTimeout int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: platform config dir)")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(dnsCmd)
	rootCmd.AddCommand(httpCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(wsCmd)
	rootCmd.AddCommand(discoverCmd)
}

// newRunner builds the probe runner from the loaded settings.
func newRunner() probes.Runner {
	return probes.NewRunner(loadSettings())
}

var pingCmd = &cobra.Command{
	Use:   "ping <host>",
	Short: "Send ICMP echo requests to a host",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := ui.NewPrinter(nil)
		p.Header("ping", args[0])
		p.Body(newRunner().Ping(context.Background(), args[0]))
	},
}

var dnsCmd = &cobra.Command{
	Use:   "dns <host>",
	Short: "Resolve A, AAAA and MX records for a host",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := ui.NewPrinter(nil)
		p.Header("dns lookup", args[0])
		report := newRunner().DNS(context.Background(), args[0])
		p.Body(probes.FormatDNS(report))
		if report.LookupErr != "" {
			p.Failure("lookup failed", nil)
			return
		}
		p.Success("resolved")
	},
}

var httpCmd = &cobra.Command{
	Use:   "http <url>",
	Short: "GET a URL and report status, timing and headers",
	Long: `Perform an HTTP GET against a URL and report the response status,
round-trip time, and a few interesting response headers.

URLs without a scheme are checked over https.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := ui.NewPrinter(nil)
		p.Header("http check", args[0])
		check := newRunner().HTTP(context.Background(), args[0])
		p.Body(probes.FormatHTTP(check))
		if check.Err != "" || !check.OK {
			p.Failure("check failed", nil)
			return
		}
		p.Success(fmt.Sprintf("responded in %d ms", check.TimeMS))
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace <host>",
	Short: "Trace the network route to a host",
	Run: func(cmd *cobra.Command, args []string) {
		p := ui.NewPrinter(nil)
		p.Header("traceroute", args[0])
		p.Body(newRunner().Trace(context.Background(), args[0]))
	},
	Args: cobra.ExactArgs(1),
}

var scanCmd = &cobra.Command{
	Use:   "scan <host> [start-end]",
	Short: "TCP connect scan a port range on a host",
	Long: `TCP connect scan a port range on a host and list the open ports.

Without a range the configured default is scanned (normally 1-1024).`,
	Example: `  # Scan the default range
  netprobe scan 192.168.1.1

  # Explicit range
  netprobe scan 192.168.1.1 8000-9000

  # Single port
  netprobe scan example.com 443-443`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings()
		spec := settings.DefaultRange
		if len(args) > 1 {
			spec = args[1]
		}

		ports := probes.ParseRange(spec)
		if len(ports) == 0 {
			return fmt.Errorf("invalid port range %q: expected start-end, e.g. 1-1024", spec)
		}

		p := ui.NewPrinter(nil)
		p.Header("port scan", fmt.Sprintf("%s %s (%d ports)", args[0], spec, len(ports)))

		start := time.Now()
		results := probes.NewRunner(settings).Scan(context.Background(), args[0], ports)
		p.Body(probes.FormatScan(args[0], results))
		p.Success(fmt.Sprintf("scanned %d ports in %s", len(ports), time.Since(start).Round(time.Millisecond)))
		return nil
	},
}

var wsCmd = &cobra.Command{
	Use:   "ws <url>",
	Short: "Check a WebSocket handshake",
	Long: `Attempt a WebSocket handshake against a URL and report the outcome.

URLs without a scheme are checked over wss; http and https schemes are
rewritten to ws and wss.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := ui.NewPrinter(nil)
		p.Header("websocket check", args[0])
		check := newRunner().WS(context.Background(), args[0])
		p.Body(probes.FormatWS(check))
		if check.Err != "" {
			p.Failure("handshake failed", nil)
			return
		}
		p.Success(fmt.Sprintf("handshake completed in %d ms", check.TimeMS))
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover [service-type]",
	Short: "Browse mDNS services on the local network",
	Long: `Browse the local network for mDNS/DNS-SD services and list every
instance found with its host, address, port and TXT metadata.

The service type defaults to the configured one (normally _http._tcp).`,
	Example: `  # Browse the default service type
  netprobe discover

  # Find printers, waiting a bit longer
  netprobe discover _ipp._tcp --timeout 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings()
		service := settings.DiscoverService
		if len(args) > 0 {
			service = args[0]
		}

		timeout := settings.DiscoverTimeout()
		if discoverTimeout > 0 {
			timeout = time.Duration(discoverTimeout) * time.Second
		}

		p := ui.NewPrinter(nil)
		p.Header("mdns discovery", fmt.Sprintf("%s (timeout: %s)", service, timeout))

		services, err := discovery.BrowseServices(service, timeout)
		if err != nil {
			p.Failure("browse failed", err)
			return err
		}

		p.Body(discovery.FormatServices(service, services))
		return nil
	},
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", 0, "Browse timeout in seconds (default: from settings)")
}
