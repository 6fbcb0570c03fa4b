package payment

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateIntent registers a payment intent with the provider and
	// returns the client secret the browser needs to confirm it.
	CreateIntent(ctx context.Context, sc model.Scope, ip CreateIntentInput) (CreateIntentOutput, error)
}

// IntentCreator is the slice of the Stripe client the usecase needs.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency, description string) (string, error)
}
