package probes

import (
	"regexp"
	"strconv"
)

// MaxRangePorts is the hard ceiling on how many ports a single textual range
// can expand to. Larger ranges silently truncate at the lower end of the
// range; they never error. This bound is part of the scan contract.
const MaxRangePorts = 5000

var rangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ParseRange expands a textual port range of the form "<start>-<end>" into
// the inclusive list of ports it covers, lowest first. The bound order in the
// input does not matter: "5-1" and "1-5" yield the same list. Any input that
// is not exactly digits-dash-digits yields nil, which callers must treat as
// an invalid range.
func ParseRange(spec string) []int {
	m := rangePattern.FindStringSubmatch(spec)
	if m == nil {
		return nil
	}

	start, err1 := strconv.Atoi(m[1])
	end, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		// Digits too large for int; treat as malformed.
		return nil
	}

	if start > end {
		start, end = end, start
	}

	count := end - start + 1
	if count > MaxRangePorts {
		count = MaxRangePorts
	}

	ports := make([]int, 0, count)
	for p := start; p < start+count; p++ {
		ports = append(ports, p)
	}
	return ports
}
