package http

import (
	"net/http"

	"sitekit-api/internal/auth"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	auth.ErrInvalidCredentials: pkgErrors.NewHTTPError(40101, "invalid username or password", http.StatusUnauthorized),
	auth.ErrUserNotFound:       pkgErrors.NewNotFoundHTTPError("user not found"),
}
