package discovery

import (
	"fmt"
	"net"
	"sort"
	"strings"
	"time"
)

// Service represents one discovered mDNS service instance.
type Service struct {
	// Instance is the advertised instance name (e.g., "Living Room Printer")
	Instance string

	// Hostname is the mDNS hostname (e.g., "printer.local.")
	Hostname string

	// IP is the preferred address (IPv4 when available)
	IP string

	// Port is the advertised service port
	Port int

	// Metadata contains the TXT record data as key/value pairs
	Metadata map[string]string

	// DiscoveredAt is when the advertisement was received
	DiscoveredAt time.Time
}

// String returns a human-readable one-line representation of the service.
func (s *Service) String() string {
	return fmt.Sprintf("%s (%s) at %s:%d", s.Instance, s.Hostname, s.IP, s.Port)
}

// Addr returns the service endpoint as "host:port".
func (s *Service) Addr() string {
	return net.JoinHostPort(s.IP, fmt.Sprintf("%d", s.Port))
}

// GetMetadata retrieves a TXT value by key, or empty string if not present.
func (s *Service) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}

// FormatServices renders a browse result for the output pane.
func FormatServices(serviceType string, services []Service) string {
	if len(services) == 0 {
		return fmt.Sprintf("No %s services found on the local network", serviceType)
	}

	sorted := append([]Service(nil), services...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Instance < sorted[j].Instance })

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s service(s):\n", len(sorted), serviceType)
	for _, svc := range sorted {
		fmt.Fprintf(&b, "  %-30s %s:%d\n", svc.Instance, svc.IP, svc.Port)
	}
	return strings.TrimRight(b.String(), "\n")
}
