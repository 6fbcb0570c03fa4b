package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	up := r.Group("/uploads")
	{
		up.POST("", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Upload)
	}
}
