package repository

import "errors"

var ErrNotFound = errors.New("roadmap item not found")
