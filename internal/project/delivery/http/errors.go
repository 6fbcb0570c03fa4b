package http

import (
	"sitekit-api/internal/project"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	project.ErrNotFound: pkgErrors.NewNotFoundHTTPError("project not found"),
}
