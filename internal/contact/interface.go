package contact

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create stores a contact-form submission and notifies the dashboard
	// in real time.
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.ContactMessage, error)

	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) (model.ContactMessage, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
