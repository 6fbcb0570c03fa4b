package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

// RegisterRoutes registers the portfolio routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	p := r.Group("/projects")
	{
		p.GET("", mw.SiteKey(), h.List)
		p.POST("", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Create)
		p.PUT("/:id", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Update)
		p.DELETE("/:id", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Delete)
	}
}
