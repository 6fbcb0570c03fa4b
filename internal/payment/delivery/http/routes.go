package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	p := r.Group("/payments")
	{
		p.POST("/intent", mw.SiteKey(), h.CreateIntent)
	}
}
