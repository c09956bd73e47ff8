package probes

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/mrourke/netprobe/internal/logging"
)

// Trace shells out to traceroute (tracert on Windows) and returns its
// combined output, or a failure string. Never returns an error.
func (r *NetRunner) Trace(ctx context.Context, host string) string {
	logging.LogProbeStart("trace", host)
	start := time.Now()

	name := "traceroute"
	if runtime.GOOS == "windows" {
		name = "tracert"
	}

	out, err := exec.CommandContext(ctx, name, host).CombinedOutput()
	logging.LogProbeResult("trace", host, time.Since(start), err)

	text := strings.TrimRight(string(out), "\n")
	if text == "" && err != nil {
		return fmt.Sprintf("%s failed: %v", name, err)
	}
	return text
}
