package tui

import (
	"fmt"

	"github.com/mrourke/netprobe/internal/probes"
)

// PromptStep is one question in a modal sequence. Validate returns an
// error message for a rejected value, or "" to accept; a nil Validate
// accepts anything, including the empty string.
type PromptStep struct {
	Question string
	Initial  string // Pre-filled value, usually the last-used argument
	Hint     string
	Validate func(value string) string
}

// promptSession walks an ordered list of steps, collecting one answer per
// step. A rejected value keeps the session on the same step; the caller
// re-opens it and surfaces the message. The session is plain data so the
// model can drop it on cancel without any cleanup.
type promptSession struct {
	action  Action
	steps   []PromptStep
	answers []string
	idx     int
}

// step returns the current question.
func (s *promptSession) step() PromptStep {
	return s.steps[s.idx]
}

// submit validates and records value. It returns done=true once every
// step has an accepted answer, or a non-empty errMsg when the value was
// rejected (the step index does not advance in that case).
func (s *promptSession) submit(value string) (done bool, errMsg string) {
	if v := s.step().Validate; v != nil {
		if msg := v(value); msg != "" {
			return false, msg
		}
	}
	s.answers = append(s.answers, value)
	s.idx++
	return s.idx >= len(s.steps), ""
}

// validPortRange rejects values that do not parse as a start-end port
// range. Used by the scan sequence second step.
func validPortRange(value string) string {
	if len(probes.ParseRange(value)) == 0 {
		return fmt.Sprintf("Invalid port range %q - expected start-end, e.g. 1-1024", value)
	}
	return ""
}

// promptFor builds the modal sequence for an action. Host and URL steps
// carry no validator: the probe itself reports unreachable or unresolvable
// targets, so any text is accepted and forwarded.
func promptFor(action Action, last map[string]string) *promptSession {
	switch action {
	case ActionPing:
		return &promptSession{action: action, steps: []PromptStep{
			{Question: "Host to ping", Initial: last["ping"], Hint: "hostname or IP"},
		}}
	case ActionDNS:
		return &promptSession{action: action, steps: []PromptStep{
			{Question: "Host to resolve", Initial: last["dns"], Hint: "hostname"},
		}}
	case ActionHTTP:
		return &promptSession{action: action, steps: []PromptStep{
			{Question: "URL to check", Initial: last["http"], Hint: "https:// assumed if no scheme"},
		}}
	case ActionTrace:
		return &promptSession{action: action, steps: []PromptStep{
			{Question: "Host to trace", Initial: last["trace"], Hint: "hostname or IP"},
		}}
	case ActionScan:
		return &promptSession{action: action, steps: []PromptStep{
			{Question: "Host to scan", Initial: last["scan.host"], Hint: "hostname or IP"},
			{Question: "Port range", Initial: last["scan.range"], Hint: "start-end, e.g. 1-1024", Validate: validPortRange},
		}}
	case ActionWS:
		return &promptSession{action: action, steps: []PromptStep{
			{Question: "WebSocket URL", Initial: last["ws"], Hint: "wss:// assumed if no scheme"},
		}}
	case ActionDiscover:
		return &promptSession{action: action, steps: []PromptStep{
			{Question: "Service type", Initial: last["discover"], Hint: "mDNS type, e.g. _http._tcp"},
		}}
	default:
		return nil
	}
}
