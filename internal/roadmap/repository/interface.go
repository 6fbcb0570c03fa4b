package repository

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope) ([]model.RoadmapItem, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.RoadmapItem, error)
	Create(ctx context.Context, sc model.Scope, item model.RoadmapItem) (model.RoadmapItem, error)
	Update(ctx context.Context, sc model.Scope, item model.RoadmapItem) (model.RoadmapItem, error)

	// IncrementVotes atomically bumps the vote counter and returns the
	// updated item.
	IncrementVotes(ctx context.Context, sc model.Scope, id string) (model.RoadmapItem, error)

	Delete(ctx context.Context, sc model.Scope, id string) error
}
