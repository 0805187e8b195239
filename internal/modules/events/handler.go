package events

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type Handler struct {
	hub      *Hub
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

// NewHandler builds the websocket endpoint. checkOrigin may be nil, in which
// case gorilla's same-origin check applies.
func NewHandler(hub *Hub, log *logrus.Logger, checkOrigin func(r *http.Request) bool) *Handler {
	return &Handler{
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.Stream)
}

// Stream upgrades the request and writes every published event as JSON
// until the client goes away or the subscription is dropped.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("events: websocket upgrade failed")
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe()
	defer sub.Cancel()

	entry := h.log.WithFields(logrus.Fields{
		"user_id":     c.GetString("user_id"),
		"subscribers": h.hub.Count(),
	})
	entry.Info("events: subscriber connected")
	defer entry.Info("events: subscriber disconnected")

	done := make(chan struct{})
	go readPump(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readPump discards client frames and closes done once the peer is gone.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
