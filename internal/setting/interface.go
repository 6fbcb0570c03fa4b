package setting

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the tenant's settings as a flat key/value map.
	Get(ctx context.Context, sc model.Scope) (map[string]string, error)

	// Upsert writes every pair in the input, inserting new keys and
	// overwriting existing ones, and returns the merged map.
	Upsert(ctx context.Context, sc model.Scope, ip UpsertInput) (map[string]string, error)
}
