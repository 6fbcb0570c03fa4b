package blog

import (
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

type GetInput struct {
	paginator.PaginateQuery

	// IncludeDrafts lists unpublished posts as well; only honored for
	// admin callers.
	IncludeDrafts bool
}

type GetOutput struct {
	Posts     []model.BlogPost
	Paginator paginator.Paginator
}

type CreateInput struct {
	Title     string
	Slug      string
	Body      string
	CoverURL  *string
	Published bool
}

type UpdateInput struct {
	ID        string
	Title     *string
	Slug      *string
	Body      *string
	CoverURL  *string
	Published *bool
}
