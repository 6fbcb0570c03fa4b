package repository

import "errors"

var ErrNotFound = errors.New("blog post not found")
