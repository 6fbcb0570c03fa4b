package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Create stores a contact-form submission.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.contact.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	m, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, m)
}

// Get lists the tenant's contact messages for the dashboard.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.contact.delivery.http.Get.ShouldBindQuery: %v", err)
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

// MarkRead flags a message as handled.
func (h *Handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	m, err := h.uc.MarkRead(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, m)
}

// Delete removes a message from the inbox.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
