package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Get lists blog posts, newest first. Visitors only see published posts;
// the dashboard can request drafts with include_drafts=true.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.blog.delivery.http.Get.ShouldBindQuery: %v", err)
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

// Detail returns one post by slug.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	post, err := h.uc.Detail(ctx, sc, c.Param("slug"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, post)
}

// Create adds a new post.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.blog.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	post, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, post)
}

// Update edits an existing post.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.blog.delivery.http.Update.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	post, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, post)
}

// Delete removes a post.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
