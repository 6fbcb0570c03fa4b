package ws

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the push connection upgrade route. The endpoint
// is open: the browser WebSocket API cannot set custom headers, and push
// content is the same public notification feed the history endpoint serves.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	ws := r.Group("/ws")
	{
		ws.GET("", h.HandleWebSocket)
	}
}
