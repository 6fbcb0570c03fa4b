package http

import (
	"net/http"

	"sitekit-api/internal/upload"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	upload.ErrMissingFile:        pkgErrors.NewHTTPError(40009, "missing file", http.StatusBadRequest),
	upload.ErrFileTooLarge:       pkgErrors.NewHTTPError(40010, "file too large", http.StatusRequestEntityTooLarge),
	upload.ErrUnsupportedType:    pkgErrors.NewHTTPError(40011, "unsupported content type", http.StatusUnsupportedMediaType),
	upload.ErrStorageUnavailable: pkgErrors.NewHTTPError(50301, "object storage unavailable", http.StatusBadGateway),
}
