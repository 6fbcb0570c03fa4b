package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	s := r.Group("/search")
	{
		s.GET("", mw.SiteKey(), h.Search)
	}
}
