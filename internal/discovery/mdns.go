package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultBrowseTimeout is the default timeout for a browse
	DefaultBrowseTimeout = 5 * time.Second
)

// Browser handles mDNS service browsing
type Browser struct {
	// Timeout is the maximum time to wait for advertisements
	Timeout time.Duration
}

// NewBrowser creates a new mDNS browser with default settings
func NewBrowser() *Browser {
	return &Browser{
		Timeout: DefaultBrowseTimeout,
	}
}

// Browse enumerates all instances of the given service type on the local
// network, e.g. "_http._tcp".
func (b *Browser) Browse(serviceType string) ([]Service, error) {
	return b.BrowseWithContext(context.Background(), serviceType)
}

// BrowseWithContext enumerates service instances with a custom context
func (b *Browser) BrowseWithContext(ctx context.Context, serviceType string) ([]Service, error) {
	ctx, cancel := context.WithTimeout(ctx, b.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	var mu sync.Mutex
	services := make([]Service, 0)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	// Collect entries in a goroutine; the channel is closed by zeroconf when
	// the context completes.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for entry := range entries {
			svc := parseServiceEntry(entry)
			if svc != nil {
				mu.Lock()
				services = append(services, *svc)
				mu.Unlock()
			}
		}
	}()

	if err := resolver.Browse(ctx, serviceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	// Wait for timeout or cancellation, then for the collector to drain.
	<-ctx.Done()
	<-done

	return services, nil
}

// parseServiceEntry converts a zeroconf service entry to a Service.
// Returns nil for entries with no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Service {
	// Prefer IPv4
	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	// Parse TXT records into metadata ("key=value" format)
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}

	return &Service{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// BrowseServices is a convenience function to browse with a custom timeout
func BrowseServices(serviceType string, timeout time.Duration) ([]Service, error) {
	browser := NewBrowser()
	browser.Timeout = timeout
	return browser.Browse(serviceType)
}
