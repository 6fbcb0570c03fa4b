package http

import (
	"net/http"

	"sitekit-api/internal/blog"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	blog.ErrPostNotFound: pkgErrors.NewNotFoundHTTPError("blog post not found"),
	blog.ErrSlugTaken:    pkgErrors.NewHTTPError(40901, "slug already in use", http.StatusConflict),
}
