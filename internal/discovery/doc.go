// Package discovery provides mDNS service discovery for netprobe.
//
// This package implements multicast DNS (DNS-SD) browsing to enumerate
// services advertised on the local network, for example "_http._tcp" or
// "_ssh._tcp". It backs the `discover` command.
//
// # Discovery Process
//
//  1. Broadcasts an mDNS browse query for the requested service type
//  2. Listens for service advertisements until the timeout elapses
//  3. Collects instance name, hostname, addresses, port and TXT metadata
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - Services must be on the same local network segment
//   - Firewall must allow mDNS (UDP port 5353)
package discovery
