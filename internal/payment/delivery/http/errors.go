package http

import (
	"net/http"

	"sitekit-api/internal/payment"
	pkgErrors "sitekit-api/pkg/errors"
	"sitekit-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	payment.ErrInvalidAmount:   pkgErrors.NewHTTPError(40007, "amount must be positive", http.StatusBadRequest),
	payment.ErrInvalidCurrency: pkgErrors.NewHTTPError(40008, "invalid currency code", http.StatusBadRequest),
	payment.ErrProvider:        pkgErrors.NewHTTPError(50201, "payment provider error", http.StatusBadGateway),
}
