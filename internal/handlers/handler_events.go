package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/SscSPs/bankroll_app/internal/events"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	eventsWriteWait    = 10 * time.Second
	eventsPongWait     = 60 * time.Second
	eventsPingInterval = (eventsPongWait * 9) / 10
	eventsBuffer       = 32
)

// EventSource is the subscribe side of the event bus.
type EventSource interface {
	Subscribe(buffer int) (<-chan events.Event, func())
}

type eventsHandler struct {
	source   EventSource
	upgrader websocket.Upgrader
}

// RegisterEventRoutes exposes ledger change notifications over a websocket.
// An empty allowedOrigins list accepts same-origin requests only.
func RegisterEventRoutes(rg *gin.RouterGroup, source EventSource, allowedOrigins []string) {
	h := &eventsHandler{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(allowedOrigins) > 0 {
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
		}
	}
	rg.GET("/events", h.streamEvents)
}

// streamEvents godoc
// @Summary Stream ledger events
// @Description Upgrades to a websocket and pushes session and platform balance changes as JSON.
// @Description Browsers pass the token as the "token" query parameter.
// @Tags events
// @Success 101
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventsHandler) streamEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, cancel := h.source.Subscribe(eventsBuffer)
	defer cancel()
	logger.Info("Event stream opened")

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(eventsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			logger.Info("Event stream closed by client")
			return
		case <-c.Request.Context().Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(eventsWriteWait))
			if err := conn.WriteJSON(e); err != nil {
				logger.Warn("Failed to write event", slog.String("event", string(e.Name)), slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(eventsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readUntilClosed drains client frames so pongs and close frames are processed.
func readUntilClosed(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	_ = conn.SetReadDeadline(time.Now().Add(eventsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(eventsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
