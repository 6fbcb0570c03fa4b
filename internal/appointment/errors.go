package appointment

import "errors"

var (
	ErrNotFound        = errors.New("appointment not found")
	ErrInvalidStatus   = errors.New("invalid appointment status")
	ErrScheduledInPast = errors.New("appointment must be scheduled in the future")
)
