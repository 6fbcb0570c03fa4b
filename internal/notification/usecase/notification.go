package usecase

import (
	"context"
	"strings"

	"sitekit-api/internal/model"
	"sitekit-api/internal/notification"
	"sitekit-api/internal/notification/repository"
	"sitekit-api/pkg/paginator"
)

const defaultHistoryLimit = 20

// Broadcast persists first, pushes second. A record that failed to persist
// is never pushed, so clients cannot see notifications that vanish on
// reload. The push itself is best-effort and does not affect the result.
func (uc *usecase) Broadcast(ctx context.Context, sc model.Scope, ip notification.BroadcastInput) (notification.NotificationOutput, error) {
	msg := strings.TrimSpace(ip.Message)
	if msg == "" {
		return notification.NotificationOutput{}, notification.ErrEmptyMessage
	}

	typ := ip.Type
	if typ == "" {
		typ = model.NotificationTypeInfo
	}
	if !typ.IsValid() {
		return notification.NotificationOutput{}, notification.ErrInvalidType
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Message: msg,
		Type:    typ,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Broadcast.Create: %v", err)
		return notification.NotificationOutput{}, err
	}

	uc.hub.Broadcast(ctx, created)

	return notification.NotificationOutput{Notification: created}, nil
}

// History returns the most recent notifications, limit clamped to the
// paginator maximum.
func (uc *usecase) History(ctx context.Context, sc model.Scope, ip notification.HistoryInput) ([]model.Notification, error) {
	limit := paginator.ClampLimit(ip.Limit, defaultHistoryLimit)

	ns, err := uc.repo.ListRecent(ctx, sc, repository.ListRecentOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.History: %v", err)
		return nil, err
	}

	return ns, nil
}
