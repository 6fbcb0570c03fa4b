package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	st := r.Group("/settings")
	{
		st.GET("", mw.SiteKey(), h.Get)
		st.PUT("", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Upsert)
	}
}
