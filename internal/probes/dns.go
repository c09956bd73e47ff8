package probes

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/mrourke/netprobe/internal/logging"
)

// resolvConfPath is where the system resolver configuration lives on
// Unix-like systems. When it cannot be read (e.g. Windows), record queries
// are skipped and only the resolver lookup is reported.
const resolvConfPath = "/etc/resolv.conf"

// DNS resolves host through the system resolver (getaddrinfo semantics) and
// additionally queries A, AAAA and MX records directly against the first
// configured nameserver. The record queries are best-effort: their failure
// leaves the corresponding list empty without failing the probe.
func (r *NetRunner) DNS(ctx context.Context, host string) DNSReport {
	logging.LogProbeStart("dns", host)
	start := time.Now()

	report := DNSReport{Host: host}

	ctx, cancel := context.WithTimeout(ctx, r.settings.DNSTimeout())
	defer cancel()

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		report.LookupErr = err.Error()
	} else {
		for _, addr := range addrs {
			family := "IPv4"
			if addr.IP.To4() == nil {
				family = "IPv6"
			}
			report.Lookup = append(report.Lookup, AddrInfo{
				Address: addr.IP.String(),
				Family:  family,
			})
		}
	}

	server := systemNameserver()
	if server != "" {
		report.A = r.queryAddresses(host, server, dns.TypeA)
		report.AAAA = r.queryAddresses(host, server, dns.TypeAAAA)
		report.MX = r.queryMX(host, server)
	}

	logging.LogProbeResult("dns", host, time.Since(start), err)
	return report
}

// systemNameserver returns "host:port" for the first configured nameserver,
// or "" when the resolver configuration is unavailable.
func systemNameserver() string {
	cfg, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(cfg.Servers) == 0 {
		return ""
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}

func (r *NetRunner) queryAddresses(host, server string, qtype uint16) []string {
	resp := r.exchange(host, server, qtype)
	if resp == nil {
		return nil
	}

	var addrs []string
	for _, rr := range resp.Answer {
		switch rec := rr.(type) {
		case *dns.A:
			addrs = append(addrs, rec.A.String())
		case *dns.AAAA:
			addrs = append(addrs, rec.AAAA.String())
		}
	}
	return addrs
}

func (r *NetRunner) queryMX(host, server string) []MXRecord {
	resp := r.exchange(host, server, dns.TypeMX)
	if resp == nil {
		return nil
	}

	var records []MXRecord
	for _, rr := range resp.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			records = append(records, MXRecord{
				Exchange: mx.Mx,
				Priority: mx.Preference,
			})
		}
	}
	return records
}

func (r *NetRunner) exchange(host, server string, qtype uint16) *dns.Msg {
	client := &dns.Client{Timeout: r.settings.DNSTimeout()}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), qtype)
	msg.RecursionDesired = true

	resp, _, err := client.Exchange(msg, server)
	if err != nil {
		return nil
	}
	return resp
}
