package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

// RegisterRoutes registers the contact routes. Submission is public; the
// inbox belongs to the dashboard.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	ct := r.Group("/contact")
	{
		ct.POST("", mw.SiteKey(), h.Create)
		ct.GET("", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Get)
		ct.PATCH("/:id/read", mw.Auth(), mw.SiteKey(), mw.Admin(), h.MarkRead)
		ct.DELETE("/:id", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Delete)
	}
}
