package search

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Search scans the site's static pages for the query and returns
	// matching pages with a text snippet around the first hit.
	Search(ctx context.Context, sc model.Scope, query string) ([]Result, error)
}
