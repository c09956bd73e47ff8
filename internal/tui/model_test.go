package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrourke/netprobe/internal/config"
	"github.com/mrourke/netprobe/internal/discovery"
	"github.com/mrourke/netprobe/internal/probes"
)

// stubRunner records calls and returns canned results, so controller
// behavior can be tested without touching the network.
type stubRunner struct {
	pingHost  string
	dnsHost   string
	dnsCalls  int
	scanHost  string
	scanPorts []int
	scanCalls int
	scanRes   []probes.PortStatus
}

func (s *stubRunner) Ping(ctx context.Context, host string) string {
	s.pingHost = host
	return "pong from " + host
}

func (s *stubRunner) DNS(ctx context.Context, host string) probes.DNSReport {
	s.dnsHost = host
	s.dnsCalls++
	return probes.DNSReport{Host: host}
}

func (s *stubRunner) HTTP(ctx context.Context, target string) probes.HTTPCheck {
	return probes.HTTPCheck{URL: target, Status: 200, OK: true}
}

func (s *stubRunner) Trace(ctx context.Context, host string) string {
	return "trace to " + host
}

func (s *stubRunner) Scan(ctx context.Context, host string, ports []int) []probes.PortStatus {
	s.scanHost = host
	s.scanPorts = ports
	s.scanCalls++
	return s.scanRes
}

func (s *stubRunner) WS(ctx context.Context, target string) probes.WSCheck {
	return probes.WSCheck{URL: target, Status: 101}
}

func (s *stubRunner) Discover(ctx context.Context, service string) ([]discovery.Service, error) {
	return nil, nil
}

func newTestModel(stub *stubRunner) Model {
	m := NewModel(stub, config.Default())
	m.width = 100
	m.height = 30
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		m, _ = press(t, m, msg)
	}
	return m
}

func enterLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m = typeText(t, m, line)
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// collect runs a command tree and flattens batch results into messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// probeResult extracts the completion message from a launched probe.
func probeResult(t *testing.T, cmd tea.Cmd) probeDoneMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if done, ok := msg.(probeDoneMsg); ok {
			return done
		}
	}
	t.Fatal("no probe completion message produced")
	return probeDoneMsg{}
}

func TestMenuNavigationWraps(t *testing.T) {
	m := newTestModel(&stubRunner{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.active != len(menuItems)-1 {
		t.Errorf("up from first entry: active = %d, want %d", m.active, len(menuItems)-1)
	}
	if m.status != StatusNav {
		t.Errorf("status = %s, want %s", m.status, StatusNav)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.active != 0 {
		t.Errorf("down from last entry: active = %d, want 0", m.active)
	}
}

func TestNumericShortcutJumps(t *testing.T) {
	m := newTestModel(&stubRunner{})

	m = typeText(t, m, "6")
	if m.active != 5 {
		t.Errorf("shortcut 6: active = %d, want 5", m.active)
	}
	if m.cmdline != "" {
		t.Errorf("shortcut leaked into command line: %q", m.cmdline)
	}
}

func TestShortcutsInertWhileTyping(t *testing.T) {
	m := newTestModel(&stubRunner{})

	m = typeText(t, m, "scan 10.0.0.1 1-100")
	if m.cmdline != "scan 10.0.0.1 1-100" {
		t.Errorf("cmdline = %q, want the full typed line", m.cmdline)
	}
	if m.active != 0 {
		t.Errorf("digits moved the selection to %d while typing", m.active)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if m.status == StatusHelp {
		t.Error("? opened help while the command line was non-empty")
	}
}

func TestTypedScanRunsProbe(t *testing.T) {
	stub := &stubRunner{scanRes: []probes.PortStatus{
		{Port: 80, Open: true},
		{Port: 81, Open: false},
		{Port: 443, Open: true},
	}}
	m := newTestModel(stub)

	m, cmd := enterLine(t, m, "scan localhost 80-443")
	if m.status != StatusRunning {
		t.Fatalf("status after enter = %s, want %s", m.status, StatusRunning)
	}

	next, _ := m.Update(probeResult(t, cmd))
	m = next.(Model)

	if stub.scanHost != "localhost" {
		t.Errorf("scan host = %q, want localhost", stub.scanHost)
	}
	if len(stub.scanPorts) != 443-80+1 {
		t.Errorf("scan got %d ports, want %d", len(stub.scanPorts), 443-80+1)
	}
	if m.status != StatusDone {
		t.Errorf("status after completion = %s, want %s", m.status, StatusDone)
	}
	if !strings.Contains(m.mainText, "Found 2 open port(s)") {
		t.Errorf("output missing count line: %q", m.mainText)
	}
	if strings.Index(m.mainText, "Port 80") > strings.Index(m.mainText, "Port 443") {
		t.Errorf("open ports not ascending: %q", m.mainText)
	}
}

func TestTypedScanBadRangeRunsNothing(t *testing.T) {
	stub := &stubRunner{}
	m := newTestModel(stub)

	m, cmd := enterLine(t, m, "scan localhost bogus")

	if m.status != StatusBadRange {
		t.Errorf("status = %s, want %s", m.status, StatusBadRange)
	}
	if stub.scanCalls != 0 {
		t.Errorf("scanner called %d times for an invalid range, want 0", stub.scanCalls)
	}
	for _, msg := range collect(cmd) {
		if _, ok := msg.(probeDoneMsg); ok {
			t.Error("a probe was launched despite the invalid range")
		}
	}
}

func TestProbeVerbWithoutArgOpensPrompt(t *testing.T) {
	stub := &stubRunner{}
	m := newTestModel(stub)

	m, _ = enterLine(t, m, "dns")
	if m.prompt == nil {
		t.Fatal("no prompt opened for bare dns")
	}
	if m.status != StatusInput {
		t.Errorf("status = %s, want %s", m.status, StatusInput)
	}

	m = typeText(t, m, "example.com")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != nil {
		t.Fatal("prompt still open after submit")
	}

	m.Update(probeResult(t, cmd))
	if stub.dnsHost != "example.com" {
		t.Errorf("dns host = %q, want example.com", stub.dnsHost)
	}
}

func TestEmptyPromptValueForwarded(t *testing.T) {
	stub := &stubRunner{}
	m := newTestModel(stub)

	m, _ = enterLine(t, m, "dns")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != nil {
		t.Fatal("empty value was rejected; host prompts accept anything")
	}

	m.Update(probeResult(t, cmd))
	if stub.dnsCalls != 1 {
		t.Fatalf("dns called %d times, want 1", stub.dnsCalls)
	}
	if stub.dnsHost != "" {
		t.Errorf("dns host = %q, want empty string forwarded as-is", stub.dnsHost)
	}
}

func TestEscCancelsPrompt(t *testing.T) {
	stub := &stubRunner{}
	m := newTestModel(stub)

	m, _ = enterLine(t, m, "ping")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompt != nil {
		t.Error("prompt still open after esc")
	}
	if stub.pingHost != "" {
		t.Error("cancelled prompt still ran the probe")
	}
}

func TestNavigationKeysInertWhileModalOpen(t *testing.T) {
	m := newTestModel(&stubRunner{})

	m, _ = enterLine(t, m, "ping")
	before := m.active
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyDown})
	if m.active != before {
		t.Errorf("arrow keys moved the selection to %d while a modal was open", m.active)
	}
}

func TestMenuEnterPrefillsFromLastRun(t *testing.T) {
	stub := &stubRunner{}
	m := newTestModel(stub)

	// Run ping once through the prompt path so the host gets cached.
	m, _ = enterLine(t, m, "ping")
	m = typeText(t, m, "192.168.1.1")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(probeResult(t, cmd))
	m = next.(Model)

	// Re-invoke ping from the menu; the modal should carry the last host.
	m = typeText(t, m, "2")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt == nil {
		t.Fatal("menu entry did not open a prompt")
	}
	if got := m.input.Value(); got != "192.168.1.1" {
		t.Errorf("prefilled value = %q, want 192.168.1.1", got)
	}
}

func TestProbeResultAppliesAfterNavigation(t *testing.T) {
	stub := &stubRunner{}
	m := newTestModel(stub)

	m, cmd := enterLine(t, m, "trace example.com")
	done := probeResult(t, cmd)

	// Navigate away before the result lands.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})

	next, _ := m.Update(done)
	m = next.(Model)
	if m.status != StatusDone {
		t.Errorf("status = %s, want %s", m.status, StatusDone)
	}
	if !strings.Contains(m.mainText, "trace to example.com") {
		t.Errorf("result not applied after navigation: %q", m.mainText)
	}
}

func TestClearCommand(t *testing.T) {
	m := newTestModel(&stubRunner{})
	m, _ = enterLine(t, m, "clear")

	if m.mainText != "" {
		t.Errorf("mainText = %q, want empty", m.mainText)
	}
	if m.status != StatusCleared {
		t.Errorf("status = %s, want %s", m.status, StatusCleared)
	}
}

func TestUnknownVerbShowsHelp(t *testing.T) {
	m := newTestModel(&stubRunner{})
	m, _ = enterLine(t, m, "frobnicate now")

	if m.status != StatusHelp {
		t.Errorf("status = %s, want %s", m.status, StatusHelp)
	}
	if !strings.Contains(m.mainText, "Commands") {
		t.Errorf("help text not shown: %q", m.mainText)
	}
}

func TestDebugCommand(t *testing.T) {
	m := newTestModel(&stubRunner{})
	m, _ = enterLine(t, m, "debug")

	if m.status != StatusDebug {
		t.Errorf("status = %s, want %s", m.status, StatusDebug)
	}
	if !strings.Contains(m.mainText, "terminal: 100x30") {
		t.Errorf("debug output missing terminal size: %q", m.mainText)
	}
}

func TestSpinnerTickDroppedWhenIdle(t *testing.T) {
	m := newTestModel(&stubRunner{})

	_, cmd := m.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Error("idle spinner tick scheduled another tick; the chain must break at idle")
	}
}

func TestBackspaceEditsCommandLine(t *testing.T) {
	m := newTestModel(&stubRunner{})

	m = typeText(t, m, "pingg")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.cmdline != "ping" {
		t.Errorf("cmdline = %q, want ping", m.cmdline)
	}

	// Backspace on an empty line is a no-op.
	m.cmdline = ""
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.cmdline != "" {
		t.Errorf("cmdline = %q, want empty", m.cmdline)
	}
}
