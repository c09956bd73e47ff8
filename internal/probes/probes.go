package probes

import (
	"context"

	"github.com/mrourke/netprobe/internal/config"
	"github.com/mrourke/netprobe/internal/discovery"
)

// AddrInfo is one resolved address from a getaddrinfo-style lookup.
type AddrInfo struct {
	Address string
	Family  string // "IPv4" or "IPv6"
}

// MXRecord is one mail exchanger record.
type MXRecord struct {
	Exchange string
	Priority uint16
}

// DNSReport aggregates the results of a DNS probe. LookupErr is set (and
// Lookup empty) when the resolver lookup itself failed; the record lists are
// independently best-effort and simply stay empty on query failure.
type DNSReport struct {
	Host      string
	Lookup    []AddrInfo
	LookupErr string
	A         []string
	AAAA      []string
	MX        []MXRecord
}

// HTTPCheck is the outcome of a single HTTP GET. Either Status/OK/Headers are
// populated, or Err is.
type HTTPCheck struct {
	URL     string
	Status  int
	OK      bool
	TimeMS  int64
	Headers map[string]string
	Err     string
}

// PortStatus reports one probed TCP port.
type PortStatus struct {
	Port int
	Open bool
}

// WSCheck is the outcome of a WebSocket handshake attempt.
type WSCheck struct {
	URL    string
	Status int
	TimeMS int64
	Err    string
}

// Runner is the collaborator contract consumed by the interaction controller
// and the CLI. Implementations must be safe for use from a single goroutine
// at a time; netprobe never runs two probes of the same Runner concurrently.
type Runner interface {
	// Ping returns human-readable multi-line output or a failure string.
	// It never fails at the API level.
	Ping(ctx context.Context, host string) string
	// DNS resolves host and collects A/AAAA/MX records.
	DNS(ctx context.Context, host string) DNSReport
	// HTTP performs a GET against target (scheme optional).
	HTTP(ctx context.Context, target string) HTTPCheck
	// Trace returns human-readable traceroute output or a failure string.
	// It never fails at the API level.
	Trace(ctx context.Context, host string) string
	// Scan probes the given TCP ports on host and reports their status.
	Scan(ctx context.Context, host string, ports []int) []PortStatus
	// WS attempts a WebSocket handshake against target.
	WS(ctx context.Context, target string) WSCheck
	// Discover browses mDNS for the given service type.
	Discover(ctx context.Context, service string) ([]discovery.Service, error)
}

// NetRunner is the production Runner backed by the real network.
type NetRunner struct {
	settings *config.Settings
}

// NewRunner creates a NetRunner. A nil settings pointer means defaults.
func NewRunner(settings *config.Settings) *NetRunner {
	if settings == nil {
		settings = config.Default()
	}
	return &NetRunner{settings: settings}
}

// Discover browses mDNS for service instances of the given type.
func (r *NetRunner) Discover(ctx context.Context, service string) ([]discovery.Service, error) {
	if service == "" {
		service = r.settings.DiscoverService
	}
	browser := discovery.NewBrowser()
	browser.Timeout = r.settings.DiscoverTimeout()
	return browser.BrowseWithContext(ctx, service)
}
