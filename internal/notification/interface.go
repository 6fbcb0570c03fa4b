package notification

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Broadcast persists a notification and pushes the stored record to
	// every live connection. Push delivery is best-effort; the returned
	// error reflects persistence only.
	Broadcast(ctx context.Context, sc model.Scope, ip BroadcastInput) (NotificationOutput, error)

	// History returns the most recent notifications for the tenant,
	// newest first.
	History(ctx context.Context, sc model.Scope, ip HistoryInput) ([]model.Notification, error)
}

// Broadcaster is the push capability the usecase needs. Satisfied by
// *hub.Hub.
type Broadcaster interface {
	Broadcast(ctx context.Context, payload any)
	Size() int
}
