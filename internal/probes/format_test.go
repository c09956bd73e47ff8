package probes

import (
	"strings"
	"testing"
)

func TestFormatScan(t *testing.T) {
	results := []PortStatus{
		{Port: 443, Open: true},
		{Port: 81, Open: false},
		{Port: 80, Open: true},
	}

	got := FormatScan("localhost", results)

	if !strings.Contains(got, "Found 2 open port(s)") {
		t.Errorf("FormatScan() missing count line: %q", got)
	}
	if strings.Contains(got, "81") {
		t.Errorf("FormatScan() should drop closed ports: %q", got)
	}
	// Ascending order
	if strings.Index(got, "Port 80") > strings.Index(got, "Port 443") {
		t.Errorf("FormatScan() ports not ascending: %q", got)
	}
}

func TestFormatScanEmpty(t *testing.T) {
	got := FormatScan("localhost", nil)
	if !strings.Contains(got, "No open ports found in range") {
		t.Errorf("FormatScan() with no results = %q", got)
	}

	got = FormatScan("localhost", []PortStatus{{Port: 22, Open: false}})
	if !strings.Contains(got, "No open ports found in range") {
		t.Errorf("FormatScan() with only closed ports = %q", got)
	}
}

func TestFormatDNS(t *testing.T) {
	report := DNSReport{
		Host: "example.com",
		Lookup: []AddrInfo{
			{Address: "93.184.216.34", Family: "IPv4"},
			{Address: "2606:2800:220:1::1", Family: "IPv6"},
		},
		A:    []string{"93.184.216.34"},
		AAAA: []string{"2606:2800:220:1::1"},
		MX: []MXRecord{
			{Exchange: "mx2.example.com.", Priority: 20},
			{Exchange: "mx1.example.com.", Priority: 10},
		},
	}

	got := FormatDNS(report)

	for _, want := range []string{"93.184.216.34", "IPv4", "IPv6", "A records:", "AAAA records:", "MX records:"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatDNS() missing %q in %q", want, got)
		}
	}
	// MX sorted by priority
	if strings.Index(got, "mx1.example.com") > strings.Index(got, "mx2.example.com") {
		t.Errorf("FormatDNS() MX records not sorted by priority: %q", got)
	}
}

func TestFormatDNSLookupError(t *testing.T) {
	report := DNSReport{Host: "nope.invalid", LookupErr: "no such host"}

	got := FormatDNS(report)
	if !strings.Contains(got, "Lookup failed: no such host") {
		t.Errorf("FormatDNS() = %q, want lookup failure line", got)
	}
}

func TestFormatHTTP(t *testing.T) {
	check := HTTPCheck{
		URL:     "https://example.com",
		Status:  200,
		OK:      true,
		TimeMS:  123,
		Headers: map[string]string{"Server": "ECS", "Content-Type": "text/html"},
	}

	got := FormatHTTP(check)

	for _, want := range []string{"https://example.com", "Status: 200 (OK)", "123 ms", "Server:", "Content-Type:"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatHTTP() missing %q in %q", want, got)
		}
	}
}

func TestFormatHTTPError(t *testing.T) {
	check := HTTPCheck{URL: "https://nope.invalid", Err: "dial tcp: no such host", TimeMS: 5}

	got := FormatHTTP(check)
	if !strings.Contains(got, "Error:  dial tcp: no such host") {
		t.Errorf("FormatHTTP() = %q, want error line", got)
	}
	if strings.Contains(got, "Status:") {
		t.Errorf("FormatHTTP() should not render a status on failure: %q", got)
	}
}

func TestFormatWS(t *testing.T) {
	ok := FormatWS(WSCheck{URL: "wss://echo.test", Status: 101, TimeMS: 40})
	if !strings.Contains(ok, "Handshake: OK") {
		t.Errorf("FormatWS() = %q, want handshake line", ok)
	}

	bad := FormatWS(WSCheck{URL: "wss://echo.test", Status: 403, Err: "bad handshake", TimeMS: 12})
	if !strings.Contains(bad, "Error:  bad handshake") {
		t.Errorf("FormatWS() = %q, want error line", bad)
	}
	if !strings.Contains(bad, "Status: 403") {
		t.Errorf("FormatWS() = %q, want rejected status", bad)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/x", "https://example.com/x"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeWSURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "wss://example.com"},
		{"http://example.com", "ws://example.com"},
		{"https://example.com", "wss://example.com"},
		{"ws://example.com", "ws://example.com"},
		{"wss://example.com", "wss://example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeWSURL(tt.in); got != tt.want {
			t.Errorf("NormalizeWSURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
