package repository

import "sitekit-api/pkg/paginator"

type GetOptions struct {
	paginator.PaginateQuery
	UnreadOnly bool
}
