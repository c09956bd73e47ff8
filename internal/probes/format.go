package probes

import (
	"fmt"
	"sort"
	"strings"
)

// FormatDNS renders a DNS report for the output pane.
func FormatDNS(report DNSReport) string {
	var b strings.Builder

	if report.LookupErr != "" {
		fmt.Fprintf(&b, "Lookup failed: %s\n", report.LookupErr)
	} else {
		b.WriteString("Resolved addresses:\n")
		if len(report.Lookup) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, addr := range report.Lookup {
			fmt.Fprintf(&b, "  %-39s %s\n", addr.Address, addr.Family)
		}
	}

	if len(report.A) > 0 {
		b.WriteString("\nA records:\n")
		for _, a := range report.A {
			fmt.Fprintf(&b, "  %s\n", a)
		}
	}
	if len(report.AAAA) > 0 {
		b.WriteString("\nAAAA records:\n")
		for _, aaaa := range report.AAAA {
			fmt.Fprintf(&b, "  %s\n", aaaa)
		}
	}
	if len(report.MX) > 0 {
		b.WriteString("\nMX records:\n")
		mx := append([]MXRecord(nil), report.MX...)
		sort.Slice(mx, func(i, j int) bool { return mx[i].Priority < mx[j].Priority })
		for _, rec := range mx {
			fmt.Fprintf(&b, "  %-39s priority %d\n", rec.Exchange, rec.Priority)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatHTTP renders an HTTP check for the output pane.
func FormatHTTP(check HTTPCheck) string {
	var b strings.Builder

	fmt.Fprintf(&b, "URL:    %s\n", check.URL)
	if check.Err != "" {
		fmt.Fprintf(&b, "Error:  %s\n", check.Err)
		fmt.Fprintf(&b, "Time:   %d ms", check.TimeMS)
		return b.String()
	}

	verdict := "FAIL"
	if check.OK {
		verdict = "OK"
	}
	fmt.Fprintf(&b, "Status: %d (%s)\n", check.Status, verdict)
	fmt.Fprintf(&b, "Time:   %d ms\n", check.TimeMS)

	if len(check.Headers) > 0 {
		b.WriteString("\nHeaders:\n")
		names := make([]string, 0, len(check.Headers))
		for name := range check.Headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %-16s %s\n", name+":", check.Headers[name])
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatScan renders a port scan result for the output pane: a count line
// followed by one line per open port, ascending. Closed ports are dropped.
func FormatScan(host string, results []PortStatus) string {
	open := OpenPorts(results)
	if len(open) == 0 {
		return fmt.Sprintf("No open ports found in range on %s", host)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d open port(s) on %s:\n", len(open), host)
	for _, res := range open {
		fmt.Fprintf(&b, "  Port %-6d open\n", res.Port)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatWS renders a WebSocket check for the output pane.
func FormatWS(check WSCheck) string {
	var b strings.Builder

	fmt.Fprintf(&b, "URL:    %s\n", check.URL)
	if check.Err != "" {
		fmt.Fprintf(&b, "Error:  %s\n", check.Err)
		if check.Status != 0 {
			fmt.Fprintf(&b, "Status: %d\n", check.Status)
		}
		fmt.Fprintf(&b, "Time:   %d ms", check.TimeMS)
		return b.String()
	}

	b.WriteString("Handshake: OK\n")
	if check.Status != 0 {
		fmt.Fprintf(&b, "Status: %d\n", check.Status)
	}
	fmt.Fprintf(&b, "Time:   %d ms", check.TimeMS)
	return b.String()
}
