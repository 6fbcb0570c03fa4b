package postgre

import (
	"context"
	"time"

	"sitekit-api/internal/model"
	"sitekit-api/internal/notification/repository"
)

// Create inserts the notification and returns the canonical stored record
// with id and timestamp assigned.
func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Notification, error) {
	n := model.Notification{
		SiteKey:   sc.SiteKey,
		Message:   opts.Message,
		Type:      opts.Type,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.db.NewInsert().
		Model(&n).
		Returning("id, created_at").
		Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgre.Create: %v", err)
		return model.Notification{}, err
	}

	return n, nil
}

// ListRecent returns the tenant's newest notifications, newest first.
func (r *implRepository) ListRecent(ctx context.Context, sc model.Scope, opts repository.ListRecentOptions) ([]model.Notification, error) {
	ns := make([]model.Notification, 0, opts.Limit)

	if err := r.db.NewSelect().
		Model(&ns).
		Where("n.site_key = ?", sc.SiteKey).
		OrderExpr("n.id DESC").
		Limit(int(opts.Limit)).
		Scan(ctx); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgre.ListRecent: %v", err)
		return nil, err
	}

	return ns, nil
}
