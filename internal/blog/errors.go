package blog

import "errors"

var (
	ErrPostNotFound = errors.New("blog post not found")
	ErrSlugTaken    = errors.New("slug already in use")
)
