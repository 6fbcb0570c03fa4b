package auth

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Login verifies credentials within the tenant and issues a JWT.
	Login(ctx context.Context, sc model.Scope, ip LoginInput) (LoginOutput, error)

	// Me returns the authenticated user's account.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
