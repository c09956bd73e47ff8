package tui

import "strings"

// Command is the result of parsing one typed line. Verb is always one of
// the known actions; unrecognized verbs fold into ActionHelp so a typo
// lands the operator on the command reference instead of an error.
type Command struct {
	Verb Action
	Arg  string // host, URL, or service type depending on the verb
	Spec string // port range, scan only
}

// ParseCommand tokenizes a typed line into a Command. Matching is
// case-insensitive on the verb; arguments keep their original case. Extra
// tokens beyond what the verb consumes are ignored. An empty line parses
// as help.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Verb: ActionHelp}
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	switch verb {
	case "help":
		return Command{Verb: ActionHelp}
	case "clear":
		return Command{Verb: ActionClear}
	case "debug":
		return Command{Verb: ActionDebug}
	case "ping":
		return Command{Verb: ActionPing, Arg: arg(0)}
	case "dns":
		return Command{Verb: ActionDNS, Arg: arg(0)}
	case "http":
		return Command{Verb: ActionHTTP, Arg: arg(0)}
	case "trace":
		return Command{Verb: ActionTrace, Arg: arg(0)}
	case "scan":
		return Command{Verb: ActionScan, Arg: arg(0), Spec: arg(1)}
	case "ws":
		return Command{Verb: ActionWS, Arg: arg(0)}
	case "discover":
		return Command{Verb: ActionDiscover, Arg: arg(0)}
	default:
		return Command{Verb: ActionHelp}
	}
}
