package probes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mrourke/netprobe/internal/logging"
)

// interestingHeaders are the response headers surfaced in an HTTP check.
var interestingHeaders = []string{"Server", "Content-Type", "Content-Length", "Location"}

// HTTP performs a single GET against target. Targets without a scheme get
// an https:// prefix. The outcome, success or failure, is folded into the
// returned HTTPCheck.
func (r *NetRunner) HTTP(ctx context.Context, target string) HTTPCheck {
	url := NormalizeURL(target)
	logging.LogProbeStart("http", url)
	start := time.Now()

	check := HTTPCheck{URL: url}

	ctx, cancel := context.WithTimeout(ctx, r.settings.HTTPTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		check.Err = err.Error()
		check.TimeMS = time.Since(start).Milliseconds()
		logging.LogProbeResult("http", url, time.Since(start), err)
		return check
	}

	resp, err := http.DefaultClient.Do(req)
	check.TimeMS = time.Since(start).Milliseconds()
	logging.LogProbeResult("http", url, time.Since(start), err)
	if err != nil {
		check.Err = err.Error()
		return check
	}
	defer resp.Body.Close()

	check.Status = resp.StatusCode
	check.OK = resp.StatusCode >= 200 && resp.StatusCode < 400
	check.Headers = make(map[string]string)
	for _, name := range interestingHeaders {
		if v := resp.Header.Get(name); v != "" {
			check.Headers[name] = v
		}
	}
	return check
}

// NormalizeURL prefixes bare hosts with https://.
func NormalizeURL(target string) string {
	if strings.Contains(target, "://") {
		return target
	}
	return "https://" + target
}
