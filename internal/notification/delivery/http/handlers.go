package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Broadcast persists a notification and pushes it to all live connections.
// The response reflects persistence only; push delivery is best-effort.
func (h *Handler) Broadcast(c *gin.Context) {
	ctx := c.Request.Context()

	var req broadcastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.Broadcast.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Broadcast(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, newBroadcastResp(out))
}

// History returns the tenant's most recent notifications, newest first.
func (h *Handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.History.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	ns, err := h.uc.History(ctx, sc, historyInput(req))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, newHistoryResp(ns))
}
