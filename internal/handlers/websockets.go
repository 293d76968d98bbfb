package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	maxInterval      = 60 * time.Second
	maxIntervalMilli = 60_000

	dashboardPostLimit = 10
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// dashboardSnapshot is what the admin dashboard renders live.
type dashboardSnapshot struct {
	Posts          []models.NewsPost `json:"posts"`
	UnreadComments int               `json:"unread_comments"`
}

// Upgrader for HTTP -> WebSocket.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// wsDashboard streams the dashboard snapshot to an authenticated admin client.
// Browsers cannot set headers on WebSocket handshakes, so the bearer token
// arrives as a "token" query parameter instead.
func (h *Handler) wsDashboard(c *gin.Context) {
	if _, err := h.services.ParseToken(c.Query("token")); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send initial snapshot immediately.
	if err := h.sendDashboard(c.Request.Context(), conn); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendDashboard(c.Request.Context(), conn); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// Helper: parseInterval reads ?interval=10s or ?interval_ms=10000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	interval := defaultInterval

	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return interval
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// Helper: sendDashboard fetches and writes the current snapshot with a write deadline.
func (h *Handler) sendDashboard(ctx context.Context, conn *websocket.Conn) error {
	snap, err := h.buildDashboard(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_dashboard_build_failed", "err", err)
		}
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "dashboard", Data: snap})
}

func (h *Handler) buildDashboard(ctx context.Context) (dashboardSnapshot, error) {
	posts, err := h.services.Posts.List(ctx)
	if err != nil {
		return dashboardSnapshot{}, err
	}
	if len(posts) > dashboardPostLimit {
		posts = posts[:dashboardPostLimit]
	}

	unread, err := h.services.Comments.List(ctx, repository.CommentFilter{Unread: true})
	if err != nil {
		return dashboardSnapshot{}, err
	}
	return dashboardSnapshot{Posts: posts, UnreadComments: len(unread)}, nil
}
