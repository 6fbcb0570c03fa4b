package repository

import (
	"context"

	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, m model.ContactMessage) (model.ContactMessage, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.ContactMessage, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.ContactMessage, error)
	Update(ctx context.Context, sc model.Scope, m model.ContactMessage) (model.ContactMessage, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
