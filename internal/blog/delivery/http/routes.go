package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

// RegisterRoutes registers the blog routes. Reads are public; writes are
// admin-only.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	b := r.Group("/blog")
	{
		b.GET("", mw.SiteKey(), h.Get)
		b.GET("/:slug", mw.SiteKey(), h.Detail)
		b.POST("", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Create)
		b.PUT("/:id", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Update)
		b.DELETE("/:id", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Delete)
	}
}
