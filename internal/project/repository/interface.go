package repository

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope) ([]model.Project, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error)
	Create(ctx context.Context, sc model.Scope, p model.Project) (model.Project, error)
	Update(ctx context.Context, sc model.Scope, p model.Project) (model.Project, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
