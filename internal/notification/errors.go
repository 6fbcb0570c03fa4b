package notification

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrInvalidType  = errors.New("invalid notification type")
)
