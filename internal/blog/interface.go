package blog

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Detail(ctx context.Context, sc model.Scope, slug string) (model.BlogPost, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.BlogPost, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.BlogPost, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
