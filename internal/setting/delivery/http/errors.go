package http

import (
	"net/http"

	"sitekit-api/internal/setting"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	setting.ErrEmptyInput: pkgErrors.NewHTTPError(40006, "no settings provided", http.StatusBadRequest),
}
