package repository

import (
	"context"

	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.BlogPost, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.BlogPost, error)
	GetBySlug(ctx context.Context, sc model.Scope, slug string) (model.BlogPost, error)
	Create(ctx context.Context, sc model.Scope, post model.BlogPost) (model.BlogPost, error)
	Update(ctx context.Context, sc model.Scope, post model.BlogPost) (model.BlogPost, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
