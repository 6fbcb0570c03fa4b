package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

// RegisterRoutes registers the roadmap routes. Listing and voting are
// public; item management is admin-only.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	rm := r.Group("/roadmap")
	{
		rm.GET("", mw.SiteKey(), h.List)
		rm.POST("/:id/vote", mw.SiteKey(), h.Vote)
		rm.POST("", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Create)
		rm.PATCH("/:id/status", mw.Auth(), mw.SiteKey(), mw.Admin(), h.UpdateStatus)
		rm.DELETE("/:id", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Delete)
	}
}
