package repository

import "sitekit-api/pkg/paginator"

type GetOptions struct {
	paginator.PaginateQuery

	// PublishedOnly restricts the listing to published posts.
	PublishedOnly bool
}
