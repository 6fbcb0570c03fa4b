package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

const serviceName = "sitekit-api"

// healthCheck reports overall health: database reachability plus the
// current push connection count.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.healthCheck: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(50300, "database connection failed", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            serviceName,
		"active_connections": srv.hub.Size(),
		"database":           "connected",
	})
}

// readyCheck reports whether the server can take traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, pkgErrors.NewHTTPError(50300, "database connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck only proves the process is up.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
