package http

import (
	"net/http"

	"sitekit-api/internal/appointment"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	appointment.ErrNotFound:        pkgErrors.NewNotFoundHTTPError("appointment not found"),
	appointment.ErrInvalidStatus:   pkgErrors.NewHTTPError(40003, "invalid appointment status", http.StatusBadRequest),
	appointment.ErrScheduledInPast: pkgErrors.NewHTTPError(40004, "appointment must be scheduled in the future", http.StatusBadRequest),
}
