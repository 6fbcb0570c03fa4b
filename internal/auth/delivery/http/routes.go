package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	a := r.Group("/auth")
	{
		a.POST("/login", mw.SiteKey(), h.Login)
		a.GET("/me", mw.Auth(), mw.SiteKey(), h.Me)
	}
}
