package roadmap

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.RoadmapItem, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.RoadmapItem, error)
	UpdateStatus(ctx context.Context, sc model.Scope, ip UpdateStatusInput) (model.RoadmapItem, error)

	// Vote increments an item's vote count and returns the updated item.
	Vote(ctx context.Context, sc model.Scope, id string) (model.RoadmapItem, error)

	Delete(ctx context.Context, sc model.Scope, id string) error
}
