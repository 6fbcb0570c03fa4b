package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/setting"
	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Get returns the tenant's settings map.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	values, err := h.uc.Get(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, values)
}

// Upsert merges the posted key/value pairs into the tenant's settings.
func (h *Handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.setting.delivery.http.Upsert.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	values, err := h.uc.Upsert(ctx, sc, setting.UpsertInput{Values: req})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, values)
}
