package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/model"
	"sitekit-api/internal/roadmap"
	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// List returns the tenant's roadmap, most voted first.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	items, err := h.uc.List(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	if items == nil {
		items = []model.RoadmapItem{}
	}
	response.OK(c, items)
}

// Vote bumps an item's vote count.
func (h *Handler) Vote(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	item, err := h.uc.Vote(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, item)
}

// Create adds a roadmap item.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.roadmap.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	item, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, item)
}

// UpdateStatus moves an item through the delivery pipeline.
func (h *Handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.roadmap.delivery.http.UpdateStatus.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	item, err := h.uc.UpdateStatus(ctx, sc, roadmap.UpdateStatusInput{
		ID:     c.Param("id"),
		Status: model.RoadmapStatus(req.Status),
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, item)
}

// Delete removes a roadmap item.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
