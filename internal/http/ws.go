package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cinerate/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is already open to any origin via CORS.
	CheckOrigin: func(*http.Request) bool { return true },
}

// serveWS upgrades the connection and hands it to the relay hub. The
// client joins movie groups by sending join-movie messages.
func (h *Handler) serveWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	realtime.NewClient(h.hub, conn).Start()
}
