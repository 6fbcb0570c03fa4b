package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/appointment"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Create books an appointment for a visitor.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.appointment.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	a, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, a)
}

// Get lists the tenant's appointments for the dashboard.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.appointment.delivery.http.Get.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, newGetResp(out))
}

// UpdateStatus moves an appointment through its lifecycle.
func (h *Handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.appointment.delivery.http.UpdateStatus.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	a, err := h.uc.UpdateStatus(ctx, sc, appointment.UpdateStatusInput{
		ID:     c.Param("id"),
		Status: model.AppointmentStatus(req.Status),
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, a)
}
