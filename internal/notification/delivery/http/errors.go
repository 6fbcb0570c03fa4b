package http

import (
	"net/http"

	"sitekit-api/internal/notification"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	notification.ErrEmptyMessage: pkgErrors.NewHTTPError(40001, "message is required", http.StatusBadRequest),
	notification.ErrInvalidType:  pkgErrors.NewHTTPError(40002, "invalid notification type", http.StatusBadRequest),
}
