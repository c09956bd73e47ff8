// Package probes implements the network diagnostics netprobe exposes:
// ICMP ping (via the system ping binary), DNS resolution, HTTP checks,
// traceroute, TCP port scanning, WebSocket handshake checks, and mDNS
// service discovery (delegated to the discovery package).
//
// The Runner interface is the seam between the interaction controller and
// the network: the TUI and the CLI both talk to a Runner, and tests swap in
// stubs. Probes are all-or-nothing from the caller's point of view: once
// invoked they run to completion or internal timeout, and failures are
// folded into the result value rather than raised, except where the contract
// explicitly returns an error.
//
// Result formatting for the terminal lives in format.go and is pure.
package probes
