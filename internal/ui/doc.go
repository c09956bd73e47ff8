// Package ui renders styled output for the run-once command surface.
//
// The interactive console draws its own frames; this package covers the
// direct subcommands (netprobe ping, netprobe scan, ...) that print a
// header, a result body, and exit. Everything goes through a Printer so
// commands stay testable against a bytes.Buffer.
package ui
