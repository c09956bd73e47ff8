package tui

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrourke/netprobe/internal/config"
	"github.com/mrourke/netprobe/internal/discovery"
	"github.com/mrourke/netprobe/internal/probes"
)

// probeDoneMsg reports the outcome of one finished probe command.
type probeDoneMsg struct {
	action Action
	text   string
	err    error
}

// Model is the single bubbletea model for the console. All state lives
// here; Update is the only writer.
type Model struct {
	runner   probes.Runner
	settings *config.Settings

	// Navigation
	active int // Selected menu entry index

	// Output pane
	mainText string
	status   StatusTag

	// Modal prompt state. prompt is nil when no modal is open.
	prompt *promptSession
	input  textinput.Model

	// Command line buffer for typed commands in navigation mode
	cmdline string

	// Last-used arguments per action, used to pre-fill modal prompts
	lastArgs map[string]string

	// Terminal geometry
	width  int
	height int

	// Animation and clock. clock is refreshed by every handler so two
	// consecutive renders with no event in between are identical.
	spin  spinner.Model
	clock time.Time
}

// NewModel builds the initial console state. A nil settings falls back to
// defaults; a nil runner gets the real network runner.
func NewModel(runner probes.Runner, settings *config.Settings) Model {
	if settings == nil {
		settings = config.Default()
	}
	if runner == nil {
		runner = probes.NewRunner(settings)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	ti := textinput.New()
	ti.CharLimit = 253
	ti.Width = 40

	return Model{
		runner:   runner,
		settings: settings,
		mainText: homeText(),
		status:   StatusReady,
		input:    ti,
		lastArgs: map[string]string{
			"scan.range": settings.DefaultRange,
			"discover":   settings.DiscoverService,
		},
		width:  wideMin,
		height: 24,
		spin:   s,
		clock:  time.Now(),
	}
}

// Init performs no work; the console is idle until the first key or the
// initial window size arrives.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes every event. Guard order matters: window sizing and probe
// completions apply unconditionally, spinner ticks are dropped unless a
// probe is running, and key events go to the modal first when one is open.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		// Ticks only matter while a probe is in flight. Dropping them
		// here breaks the tick chain, so the app is idle between runs.
		if m.status != StatusRunning {
			return m, nil
		}
		m.clock = time.Now()
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case probeDoneMsg:
		m.clock = time.Now()
		if msg.err != nil {
			m.setMain(fmt.Sprintf("Error: %v", msg.err), StatusError)
		} else {
			m.setMain(msg.text, StatusDone)
		}
		return m, nil

	case tea.KeyMsg:
		m.clock = time.Now()
		if m.prompt != nil {
			return m.updateModal(msg)
		}
		return m.updateNav(msg)
	}

	return m, nil
}

// setMain replaces the output pane and status together.
func (m *Model) setMain(text string, tag StatusTag) {
	m.mainText = text
	m.status = tag
}

// updateModal handles keys while a prompt is open. Navigation shortcuts
// and the command line are inert here; everything funnels into the text
// input until enter submits or esc cancels.
func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.prompt = nil
		m.input.Blur()
		m.status = StatusNav
		return m, nil

	case "enter":
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitPrompt feeds the current input value to the session. Rejected
// values re-open the same step with the message in the output pane;
// accepted values advance, and a finished session launches the action.
func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	done, errMsg := m.prompt.submit(m.input.Value())
	if errMsg != "" {
		m.setMain(errMsg, StatusInputError)
		m.input.SetValue("")
		return m, textinput.Blink
	}
	if !done {
		m.openStep()
		return m, textinput.Blink
	}

	action := m.prompt.action
	answers := m.prompt.answers
	m.prompt = nil
	m.input.Blur()
	return m.completeSequence(action, answers)
}

// completeSequence records the collected answers and starts the probe.
// Arguments are cached only here, so a cancelled or rejected sequence
// never pollutes the pre-fill for the next run.
func (m Model) completeSequence(action Action, answers []string) (tea.Model, tea.Cmd) {
	switch action {
	case ActionScan:
		m.lastArgs["scan.host"] = answers[0]
		m.lastArgs["scan.range"] = answers[1]
		return m.startScan(answers[0], answers[1])
	default:
		m.lastArgs[string(action)] = answers[0]
		return m.startProbe(action, answers[0])
	}
}

// openPrompt begins the modal sequence for an action.
func (m *Model) openPrompt(action Action) tea.Cmd {
	m.prompt = promptFor(action, m.lastArgs)
	if m.prompt == nil {
		return nil
	}
	m.status = StatusInput
	m.openStep()
	return textinput.Blink
}

// openStep loads the current step into the text input.
func (m *Model) openStep() {
	step := m.prompt.step()
	m.input.SetValue(step.Initial)
	m.input.CursorEnd()
	m.input.Focus()
}

// updateNav handles keys in navigation mode. Printable characters feed
// the command line; digits and "?" double as shortcuts only while the
// line is empty, so "scan 10.0.0.1 1-100" types cleanly.
func (m Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "up":
		m.active = (m.active - 1 + len(menuItems)) % len(menuItems)
		m.status = StatusNav
		return m, nil

	case "down":
		m.active = (m.active + 1) % len(menuItems)
		m.status = StatusNav
		return m, nil

	case "backspace":
		if r := []rune(m.cmdline); len(r) > 0 {
			m.cmdline = string(r[:len(r)-1])
		}
		return m, nil

	case "enter":
		if m.cmdline != "" {
			line := m.cmdline
			m.cmdline = ""
			return m.dispatch(ParseCommand(line))
		}
		return m.runMenuItem(menuItems[m.active].Action)
	}

	if m.cmdline == "" {
		// Shortcuts are only live while nothing has been typed.
		if key == "?" {
			m.setMain(helpText(), StatusHelp)
			return m, nil
		}
		if len(key) == 1 && key[0] >= '1' && key[0] <= '8' {
			m.active = int(key[0] - '1')
			m.status = StatusNav
			return m, nil
		}
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		m.cmdline += string(msg.Runes)
	} else if msg.Type == tea.KeySpace {
		m.cmdline += " "
	}
	return m, nil
}

// runMenuItem executes the selected sidebar entry.
func (m Model) runMenuItem(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case ActionHome:
		m.setMain(homeText(), StatusReady)
		return m, nil
	case ActionHelp:
		m.setMain(helpText(), StatusHelp)
		return m, nil
	case ActionClear:
		m.setMain("", StatusCleared)
		return m, nil
	default:
		return m, m.openPrompt(action)
	}
}

// dispatch executes a parsed command line. Probe verbs with a missing
// argument fall back to the modal sequence instead of failing.
func (m Model) dispatch(c Command) (tea.Model, tea.Cmd) {
	switch c.Verb {
	case ActionHelp:
		m.setMain(helpText(), StatusHelp)
		return m, nil

	case ActionClear:
		m.setMain("", StatusCleared)
		return m, nil

	case ActionDebug:
		m.setMain(m.debugText(), StatusDebug)
		return m, nil

	case ActionScan:
		if c.Arg == "" || c.Spec == "" {
			return m, m.openPrompt(ActionScan)
		}
		if len(probes.ParseRange(c.Spec)) == 0 {
			m.setMain(fmt.Sprintf("Invalid port range %q - expected start-end, e.g. 1-1024", c.Spec), StatusBadRange)
			return m, nil
		}
		return m.startScan(c.Arg, c.Spec)

	default:
		if c.Arg == "" {
			return m, m.openPrompt(c.Verb)
		}
		return m.startProbe(c.Verb, c.Arg)
	}
}

// startProbe launches a single-argument probe in the background and
// switches the pane to the running state.
func (m Model) startProbe(action Action, arg string) (tea.Model, tea.Cmd) {
	m.setMain(fmt.Sprintf("Running %s %s ...", action, arg), StatusRunning)
	return m, tea.Batch(m.spin.Tick, m.probeCmd(action, arg, nil))
}

// startScan parses the range and launches the scanner. The range was
// validated by the caller, but an empty parse is still treated as a bad
// range rather than a zero-port scan.
func (m Model) startScan(host, spec string) (tea.Model, tea.Cmd) {
	ports := probes.ParseRange(spec)
	if len(ports) == 0 {
		m.setMain(fmt.Sprintf("Invalid port range %q - expected start-end, e.g. 1-1024", spec), StatusBadRange)
		return m, nil
	}
	m.setMain(fmt.Sprintf("Scanning %s (%d ports) ...", host, len(ports)), StatusRunning)
	return m, tea.Batch(m.spin.Tick, m.probeCmd(ActionScan, host, ports))
}

// probeCmd wraps one probe call as a tea.Cmd. The closure captures only
// the runner and the arguments, never the model, so a result started from
// one screen applies cleanly whenever it arrives.
func (m Model) probeCmd(action Action, arg string, ports []int) tea.Cmd {
	runner := m.runner
	return func() tea.Msg {
		ctx := context.Background()

		var text string
		var err error
		switch action {
		case ActionPing:
			text = runner.Ping(ctx, arg)
		case ActionDNS:
			text = probes.FormatDNS(runner.DNS(ctx, arg))
		case ActionHTTP:
			text = probes.FormatHTTP(runner.HTTP(ctx, arg))
		case ActionTrace:
			text = runner.Trace(ctx, arg)
		case ActionScan:
			text = probes.FormatScan(arg, runner.Scan(ctx, arg, ports))
		case ActionWS:
			text = probes.FormatWS(runner.WS(ctx, arg))
		case ActionDiscover:
			var services []discovery.Service
			services, err = runner.Discover(ctx, arg)
			if err == nil {
				text = discovery.FormatServices(arg, services)
			}
		}

		return probeDoneMsg{action: action, text: text, err: err}
	}
}

// debugText reports runtime state for the debug command.
func (m Model) debugText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "netprobe %s\n", AppVersion())
	fmt.Fprintf(&b, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&b, "terminal: %dx%d\n", m.width, m.height)
	fmt.Fprintf(&b, "selected: %s\n", menuItems[m.active].Label)
	fmt.Fprintf(&b, "status: %s\n", m.status)
	fmt.Fprintf(&b, "ping count: %d\n", m.settings.PingCount)
	fmt.Fprintf(&b, "dial timeout: %s\n", m.settings.DialTimeout())
	fmt.Fprintf(&b, "scan batch: %d\n", m.settings.ScanBatch)
	fmt.Fprintf(&b, "default range: %s\n", m.settings.DefaultRange)
	return b.String()
}

// homeText is the landing pane content.
func homeText() string {
	return fmt.Sprintf(`Welcome to netprobe %s

A full-screen console for quick network diagnostics:
ping, DNS lookups, HTTP checks, traceroute, and TCP
port scans, plus WebSocket handshakes and mDNS
service discovery.

Pick an entry with the arrow keys or 1-8 and press
enter, or type a command below. Press ? for help.

%s`, AppVersion(), GitHubURL)
}

// helpText is the command and key reference.
func helpText() string {
	return `Commands (type and press enter):

  ping <host>           ICMP echo a host
  dns <host>            Resolve A, AAAA and MX records
  http <url>            GET a URL and report status
  trace <host>          Trace the route to a host
  scan <host> <a-b>     TCP connect scan a port range
  ws <url>              WebSocket handshake check
  discover <type>       Browse mDNS services, e.g. _http._tcp
  help                  Show this reference
  clear                 Wipe the output pane
  debug                 Show runtime state

A probe verb without arguments opens a prompt instead.

Keys:

  up/down    select a menu entry
  1-8        jump to a menu entry (while the line is empty)
  enter      run the selection, or the typed command
  ?          this reference (while the line is empty)
  esc        cancel an open prompt
  ctrl+c     quit`
}
