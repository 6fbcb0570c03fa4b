package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// CreateIntent registers a payment intent and hands back its client
// secret for confirmation in the browser.
func (h *Handler) CreateIntent(c *gin.Context) {
	ctx := c.Request.Context()

	var req createIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.payment.delivery.http.CreateIntent.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.CreateIntent(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, createIntentResp{ClientSecret: out.ClientSecret})
}
