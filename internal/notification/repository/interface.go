package repository

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Notification, error)
	ListRecent(ctx context.Context, sc model.Scope, opts ListRecentOptions) ([]model.Notification, error)
}
