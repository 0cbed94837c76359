package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
	maxInboundBytes = 512

	defaultInterval = time.Second
	maxInterval     = 10 * time.Second

	defaultFeedSize = 20
	maxFeedSize     = 100

	msgConversions = "conversions"
	msgError       = "error"
	errFeedHistory = "conversion history unavailable"
)

type wsEnvelope struct {
	Type  string              `json:"type"`
	Data  []models.Conversion `json:"data,omitempty"`
	Error string              `json:"error,omitempty"`
}

// Anyone may watch the feed, so the origin is not checked.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// conversionFeed pushes the newest conversions to one subscriber, skipping
// ticks where nothing new was recorded.
type conversionFeed struct {
	h      *Handler
	conn   *websocket.Conn
	limit  int
	lastID string
	sent   bool
}

// @Summary      Live conversion feed
// @Description  WebSocket. Sends {"type":"conversions","data":[...]} on connect and whenever a new conversion is recorded.
// @Tags         history
// @Param        interval     query  string  false  "Poll period as a Go duration, at most 10s"  example(2s)
// @Param        interval_ms  query  int     false  "Poll period in milliseconds, at most 10000"
// @Param        limit        query  int     false  "Conversions per message, 1-100"
// @Success      101
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	limit := parseFeedLimit(c.Query("limit"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	feed := &conversionFeed{h: h, conn: conn, limit: limit}
	feed.run(c.Request.Context(), interval)
}

func (f *conversionFeed) run(ctx context.Context, interval time.Duration) {
	closed := f.watchClose()

	poll := time.NewTicker(interval)
	defer poll.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		if err := f.push(ctx); err != nil {
			f.h.logFeed("ws_write_failed", err)
			return
		}
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = f.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := f.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				f.h.logFeed("ws_ping_failed", err)
				return
			}
		case <-poll.C:
		}
	}
}

// watchClose reads until the peer goes away. Subscribers never send data, so
// anything besides control frames is dropped.
func (f *conversionFeed) watchClose() <-chan struct{} {
	f.conn.SetReadLimit(maxInboundBytes)
	_ = f.conn.SetReadDeadline(time.Now().Add(pongWait))
	f.conn.SetPongHandler(func(string) error {
		return f.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := f.conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return closed
}

// push sends the newest conversions if they changed since the last message.
// A history failure is reported to the subscriber, not treated as fatal.
func (f *conversionFeed) push(ctx context.Context) error {
	recent, err := f.h.services.History.RecentConversions(ctx, f.limit)
	if err != nil {
		f.h.logFeed("ws_history_failed", err)
		return f.write(wsEnvelope{Type: msgError, Error: errFeedHistory})
	}

	newest := ""
	if len(recent) > 0 {
		newest = recent[0].ID
	}
	if f.sent && newest == f.lastID {
		return nil
	}
	if err := f.write(wsEnvelope{Type: msgConversions, Data: recent}); err != nil {
		return err
	}
	f.sent, f.lastID = true, newest
	return nil
}

func (f *conversionFeed) write(env wsEnvelope) error {
	_ = f.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return f.conn.WriteJSON(env)
}

func (h *Handler) logFeed(event string, err error) {
	if h.log != nil {
		h.log.Infow(event, "err", err)
	}
}

// parseInterval accepts ?interval=<duration> or ?interval_ms=<n>, the first
// valid one winning, and falls back to the configured period.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	candidates := []func() (time.Duration, error){
		func() (time.Duration, error) { return time.ParseDuration(c.Query("interval")) },
		func() (time.Duration, error) {
			ms, err := strconv.Atoi(c.Query("interval_ms"))
			return time.Duration(ms) * time.Millisecond, err
		},
	}
	for _, parse := range candidates {
		if d, err := parse(); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	return h.opts.FeedInterval
}

func parseFeedLimit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return defaultFeedSize
	}
	if n > maxFeedSize {
		return maxFeedSize
	}
	return n
}
