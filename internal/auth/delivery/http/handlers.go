package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Login verifies credentials and returns a JWT for dashboard access.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Login.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Login(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, newLoginResp(out))
}

// Me returns the authenticated user's account.
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	usr, err := h.uc.Me(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, usr)
}
