package project

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Project, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Project, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Project, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
