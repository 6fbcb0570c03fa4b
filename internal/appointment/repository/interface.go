package repository

import (
	"context"

	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, a model.Appointment) (model.Appointment, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Appointment, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Appointment, error)
	Update(ctx context.Context, sc model.Scope, a model.Appointment) (model.Appointment, error)
}
