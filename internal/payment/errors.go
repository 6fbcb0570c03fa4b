package payment

import "errors"

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrProvider        = errors.New("payment provider error")
)
