package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sitekit-api/internal/model"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.SiteSetting, error) {
	settings := make([]model.SiteSetting, 0)
	err := r.db.NewSelect().
		Model(&settings).
		Where("ss.site_key = ?", sc.SiteKey).
		Order("ss.key ASC").
		Scan(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.setting.repository.postgre.List: %v", err)
		return nil, err
	}
	return settings, nil
}

// Upsert inserts the batch with ON CONFLICT so existing keys are
// overwritten in place.
func (r *implRepository) Upsert(ctx context.Context, sc model.Scope, settings []model.SiteSetting) error {
	now := time.Now().UTC()
	for i := range settings {
		settings[i].ID = uuid.NewString()
		settings[i].SiteKey = sc.SiteKey
		settings[i].UpdatedAt = now
	}

	_, err := r.db.NewInsert().
		Model(&settings).
		On("CONFLICT (site_key, key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.setting.repository.postgre.Upsert: %v", err)
		return err
	}
	return nil
}
