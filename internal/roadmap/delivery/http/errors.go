package http

import (
	"net/http"

	"sitekit-api/internal/roadmap"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	roadmap.ErrNotFound:      pkgErrors.NewNotFoundHTTPError("roadmap item not found"),
	roadmap.ErrInvalidStatus: pkgErrors.NewHTTPError(40005, "invalid roadmap status", http.StatusBadRequest),
}
