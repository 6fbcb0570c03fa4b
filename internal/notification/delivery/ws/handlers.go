package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"sitekit-api/internal/hub"
)

// HandleWebSocket upgrades the HTTP connection to a WebSocket push
// connection. The connection is registered with the hub exactly once per
// successful upgrade; from then on cleanup rides the hub's close observer,
// so no other code path unregisters it.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	ctx := c.Request.Context()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  h.cfg.ReadBufferSize,
		WriteBufferSize: h.cfg.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			// Push content is public; tenant scoping happens in what gets
			// broadcast, not in who may listen.
			return true
		},
	}

	wsConn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.ws.HandleWebSocket.Upgrade: %v", err)
		return
	}

	conn := hub.NewWSConnection(h.l, wsConn, h.cfg.Connection)
	h.hub.Register(conn)

	// Blocks until the peer goes away or the server shuts down.
	conn.Serve(ctx)
}
