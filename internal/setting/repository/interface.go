package repository

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope) ([]model.SiteSetting, error)
	Upsert(ctx context.Context, sc model.Scope, settings []model.SiteSetting) error
}
