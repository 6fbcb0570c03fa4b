package http

import (
	"net/http"

	"sitekit-api/internal/search"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	search.ErrEmptyQuery: pkgErrors.NewHTTPError(40012, "empty search query", http.StatusBadRequest),
}
