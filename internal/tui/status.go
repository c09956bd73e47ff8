package tui

// StatusTag describes the lifecycle phase of the last action. It drives the
// status bar color and whether the spinner animates.
type StatusTag string

const (
	StatusReady      StatusTag = "ready"
	StatusRunning    StatusTag = "running"
	StatusDone       StatusTag = "done"
	StatusError      StatusTag = "error"
	StatusInput      StatusTag = "input"
	StatusNav        StatusTag = "nav"
	StatusCleared    StatusTag = "cleared"
	StatusBadRange   StatusTag = "bad-range"
	StatusDebug      StatusTag = "debug"
	StatusHelp       StatusTag = "help"
	StatusInputError StatusTag = "input-error"
)

// Label returns the uppercase status bar text for the tag.
func (s StatusTag) Label() string {
	switch s {
	case StatusReady:
		return "READY"
	case StatusRunning:
		return "RUNNING"
	case StatusDone:
		return "DONE"
	case StatusError:
		return "ERROR"
	case StatusInput:
		return "INPUT"
	case StatusNav:
		return "NAV"
	case StatusCleared:
		return "CLEARED"
	case StatusBadRange:
		return "BAD RANGE"
	case StatusDebug:
		return "DEBUG"
	case StatusHelp:
		return "HELP"
	case StatusInputError:
		return "INPUT ERROR"
	default:
		return string(s)
	}
}
