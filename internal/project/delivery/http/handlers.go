package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/model"
	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// List returns the tenant's portfolio items in display order.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	ps, err := h.uc.List(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	if ps == nil {
		ps = []model.Project{}
	}
	response.OK(c, ps)
}

// Create adds a portfolio item.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.project.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, p)
}

// Update edits a portfolio item.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.project.delivery.http.Update.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	p, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, p)
}

// Delete removes a portfolio item.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
