package probes

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mrourke/netprobe/internal/logging"
)

// Ping shells out to the system ping binary and returns its combined output.
// A failing or missing binary yields a failure string, never an error: the
// controller renders whatever comes back.
func (r *NetRunner) Ping(ctx context.Context, host string) string {
	logging.LogProbeStart("ping", host)
	start := time.Now()

	count := strconv.Itoa(r.settings.PingCount)
	var args []string
	if runtime.GOOS == "windows" {
		args = []string{"-n", count, host}
	} else {
		args = []string{"-c", count, host}
	}

	out, err := exec.CommandContext(ctx, "ping", args...).CombinedOutput()
	logging.LogProbeResult("ping", host, time.Since(start), err)

	text := strings.TrimRight(string(out), "\n")
	if err != nil {
		if text == "" {
			return fmt.Sprintf("ping failed: %v", err)
		}
		// Non-zero exit with output usually means "no response"; the output
		// itself is the interesting part.
		return text
	}
	return text
}
