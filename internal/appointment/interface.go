package appointment

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create books an appointment for a visitor and notifies the
	// dashboard in real time.
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Appointment, error)

	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	UpdateStatus(ctx context.Context, sc model.Scope, ip UpdateStatusInput) (model.Appointment, error)
}
