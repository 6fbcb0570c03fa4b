package repository

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	GetByUsername(ctx context.Context, sc model.Scope, username string) (model.User, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
}
