package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// SiteKeyHeader carries the tenant discriminator on every API request.
const SiteKeyHeader = "X-Site-Key"

// SiteKey returns a middleware that resolves the tenant for the request.
// Anonymous visitors identify their tenant through the X-Site-Key header
// (or the site_key query parameter, for contexts that cannot set
// headers); authenticated callers already carry it in their token, and
// the header, when present, must agree with it.
func (m Middleware) SiteKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(SiteKeyHeader)
		if header == "" {
			header = c.Query("site_key")
		}
		sc := scope.GetScopeFromContext(c.Request.Context())

		switch {
		case sc.SiteKey == "" && header == "":
			response.HttpError(c, errors.NewHTTPError(http.StatusBadRequest, "missing site key", http.StatusBadRequest))
			c.Abort()
			return
		case sc.SiteKey == "":
			sc.SiteKey = header
		case header != "" && header != sc.SiteKey:
			m.l.Warnf(c.Request.Context(), "Site key header %q does not match token site key %q", header, sc.SiteKey)
			response.Forbidden(c)
			c.Abort()
			return
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
