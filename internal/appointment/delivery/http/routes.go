package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/middleware"
)

// RegisterRoutes registers the appointment routes. Booking is public;
// listing and status changes belong to the dashboard.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	a := r.Group("/appointments")
	{
		a.POST("", mw.SiteKey(), h.Create)
		a.GET("", mw.Auth(), mw.SiteKey(), mw.Admin(), h.Get)
		a.PATCH("/:id/status", mw.Auth(), mw.SiteKey(), mw.Admin(), h.UpdateStatus)
	}
}
