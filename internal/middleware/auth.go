package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sitekit-api/internal/model"
	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Auth returns a middleware that validates JWT tokens and sets the payload
// and scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.l.Warnf(c.Request.Context(), "Missing Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(c.Request.Context(), "Invalid Authorization header format | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Admin returns a middleware that requires an authenticated admin. Must run
// after Auth.
func (m Middleware) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		if !sc.IsAuthenticated() || sc.Role != model.RoleAdmin {
			m.l.Warnf(c.Request.Context(), "Admin access denied for user %q role %q | Path: %s",
				sc.UserID, sc.Role, c.Request.URL.Path)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
