package tui

// Action identifies a menu entry or typed command verb.
type Action string

const (
	ActionHome     Action = "home"
	ActionPing     Action = "ping"
	ActionDNS      Action = "dns"
	ActionHTTP     Action = "http"
	ActionTrace    Action = "trace"
	ActionScan     Action = "scan"
	ActionHelp     Action = "help"
	ActionClear    Action = "clear"
	ActionDebug    Action = "debug"
	ActionWS       Action = "ws"
	ActionDiscover Action = "discover"
)

// MenuItem is one sidebar entry: a numeric shortcut, a label, a one-line
// hint rendered under the label, and a leading icon.
type MenuItem struct {
	Action Action
	Label  string
	Hint   string
	Icon   string
}

// menuItems is the fixed sidebar menu. Order defines the numeric shortcuts
// 1-8 and the arrow-key cycle.
var menuItems = []MenuItem{
	{Action: ActionHome, Label: "Home", Hint: "About this tool", Icon: "⌂"},
	{Action: ActionPing, Label: "Ping", Hint: "ICMP echo a host", Icon: "⇄"},
	{Action: ActionDNS, Label: "DNS Lookup", Hint: "Resolve A/AAAA/MX", Icon: "⍈"},
	{Action: ActionHTTP, Label: "HTTP Check", Hint: "GET a URL, show status", Icon: "⇩"},
	{Action: ActionTrace, Label: "Traceroute", Hint: "Hops to a host", Icon: "⤳"},
	{Action: ActionScan, Label: "Port Scan", Hint: "TCP connect a range", Icon: "⛉"},
	{Action: ActionHelp, Label: "Help", Hint: "Commands and keys", Icon: "?"},
	{Action: ActionClear, Label: "Clear", Hint: "Wipe the output pane", Icon: "⌫"},
}

// MenuItems returns the sidebar entries in shortcut order.
func MenuItems() []MenuItem {
	return menuItems
}
