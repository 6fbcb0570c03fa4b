package roadmap

import "errors"

var (
	ErrNotFound      = errors.New("roadmap item not found")
	ErrInvalidStatus = errors.New("invalid roadmap status")
)
