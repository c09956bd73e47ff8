package probes

import (
	"context"
	"net"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrourke/netprobe/internal/logging"
)

// Scan probes the given TCP ports on host with plain connect attempts,
// running a fixed-size batch of dials concurrently at a time. There is no
// retry: a port that does not accept within the dial timeout is reported
// closed. Results cover every requested port and come back sorted ascending.
func (r *NetRunner) Scan(ctx context.Context, host string, ports []int) []PortStatus {
	logging.LogProbeStart("scan", host)
	start := time.Now()

	dialer := net.Dialer{Timeout: r.settings.DialTimeout()}
	batch := r.settings.ScanBatch
	if batch <= 0 {
		batch = 1
	}

	results := make([]PortStatus, 0, len(ports))
	var mu sync.Mutex

	for offset := 0; offset < len(ports); offset += batch {
		end := offset + batch
		if end > len(ports) {
			end = len(ports)
		}

		var wg sync.WaitGroup
		for _, port := range ports[offset:end] {
			wg.Add(1)
			go func(port int) {
				defer wg.Done()
				addr := net.JoinHostPort(host, strconv.Itoa(port))
				conn, err := dialer.DialContext(ctx, "tcp", addr)
				open := err == nil
				if conn != nil {
					conn.Close()
				}
				mu.Lock()
				results = append(results, PortStatus{Port: port, Open: open})
				mu.Unlock()
			}(port)
		}
		wg.Wait()

		if ctx.Err() != nil {
			break
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Port < results[j].Port })

	logging.Debug("Scan finished",
		zap.String("host", host),
		zap.Int("ports", len(ports)),
		zap.Int("open", countOpen(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results
}

func countOpen(results []PortStatus) int {
	n := 0
	for _, res := range results {
		if res.Open {
			n++
		}
	}
	return n
}

// OpenPorts filters a scan result down to the open ports, sorted ascending.
func OpenPorts(results []PortStatus) []PortStatus {
	open := make([]PortStatus, 0, len(results))
	for _, res := range results {
		if res.Open {
			open = append(open, res)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].Port < open[j].Port })
	return open
}
