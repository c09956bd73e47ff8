package probes

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mrourke/netprobe/internal/logging"
)

// WS attempts a WebSocket handshake against target and reports how it went.
// http/https schemes are rewritten to ws/wss; bare hosts default to wss://.
func (r *NetRunner) WS(ctx context.Context, target string) WSCheck {
	url := NormalizeWSURL(target)
	logging.LogProbeStart("ws", url)
	start := time.Now()

	check := WSCheck{URL: url}

	ctx, cancel := context.WithTimeout(ctx, r.settings.HTTPTimeout())
	defer cancel()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	check.TimeMS = time.Since(start).Milliseconds()
	logging.LogProbeResult("ws", url, time.Since(start), err)

	if resp != nil {
		check.Status = resp.StatusCode
		resp.Body.Close()
	}
	if err != nil {
		check.Err = err.Error()
		return check
	}

	conn.Close()
	return check
}

// NormalizeWSURL maps a target onto a WebSocket URL.
func NormalizeWSURL(target string) string {
	switch {
	case strings.HasPrefix(target, "ws://"), strings.HasPrefix(target, "wss://"):
		return target
	case strings.HasPrefix(target, "http://"):
		return "ws://" + strings.TrimPrefix(target, "http://")
	case strings.HasPrefix(target, "https://"):
		return "wss://" + strings.TrimPrefix(target, "https://")
	default:
		return "wss://" + target
	}
}
