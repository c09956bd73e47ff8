// Package tui implements the interactive full-screen console for netprobe.
//
// The package is organized around a single bubbletea model that owns all
// mutable state: the selected menu entry, the output pane text, the status
// tag, the modal prompt (at most one open at a time), and the cache of
// last-used probe arguments. Every input event and probe completion flows
// through the model's Update; nothing else mutates state, so redraws always
// observe handler-atomic snapshots.
//
// Input handling reconciles two entry styles over the one bubbletea key
// stream: navigation (arrows, numeric shortcuts, enter to run the selected
// entry) and line-based command entry (printable keys accumulate into a
// command line that enter dispatches). While a modal prompt is open, all
// keys belong to the prompt; navigation shortcuts and the command line are
// inert.
//
// Probes run as tea.Cmd closures and report back via a completion message.
// A probe started from one menu entry finishes even if the operator has
// navigated elsewhere; its result is applied when it arrives. The spinner
// is driven by spinner ticks that are only forwarded while a probe is in
// flight, so the application is completely idle between keypresses.
package tui
