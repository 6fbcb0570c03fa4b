package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

// RegisterRoutes registers the notification routes. Broadcast is an admin
// operation; history stays open to the tenant's visitors.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	n := r.Group("/notifications")
	{
		n.POST("/broadcast", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Broadcast)
		n.GET("/history", mw.SiteKey(), h.History)
	}
}
