package http

import (
	"sitekit-api/internal/contact"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	contact.ErrNotFound: pkgErrors.NewNotFoundHTTPError("contact message not found"),
}
