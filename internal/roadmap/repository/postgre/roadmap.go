package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sitekit-api/internal/model"
	"sitekit-api/internal/roadmap/repository"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.RoadmapItem, error) {
	items := make([]model.RoadmapItem, 0)
	err := r.db.NewSelect().
		Model(&items).
		Where("ri.site_key = ?", sc.SiteKey).
		OrderExpr("ri.votes DESC, ri.created_at ASC").
		Scan(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.roadmap.repository.postgre.List: %v", err)
		return nil, err
	}
	return items, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.RoadmapItem, error) {
	var item model.RoadmapItem
	err := r.db.NewSelect().
		Model(&item).
		Where("ri.site_key = ?", sc.SiteKey).
		Where("ri.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoadmapItem{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.roadmap.repository.postgre.Detail: %v", err)
		return model.RoadmapItem{}, err
	}
	return item, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, item model.RoadmapItem) (model.RoadmapItem, error) {
	item.SiteKey = sc.SiteKey
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(&item).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.roadmap.repository.postgre.Create: %v", err)
		return model.RoadmapItem{}, err
	}
	return item, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, item model.RoadmapItem) (model.RoadmapItem, error) {
	item.UpdatedAt = time.Now().UTC()

	res, err := r.db.NewUpdate().
		Model(&item).
		WherePK().
		Where("ri.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.roadmap.repository.postgre.Update: %v", err)
		return model.RoadmapItem{}, err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return model.RoadmapItem{}, repository.ErrNotFound
	}
	return item, nil
}

// IncrementVotes bumps the counter in a single statement so concurrent
// votes cannot lose updates.
func (r *implRepository) IncrementVotes(ctx context.Context, sc model.Scope, id string) (model.RoadmapItem, error) {
	var item model.RoadmapItem
	err := r.db.NewUpdate().
		Model(&item).
		Set("votes = votes + 1").
		Set("updated_at = ?", time.Now().UTC()).
		Where("ri.id = ?", id).
		Where("ri.site_key = ?", sc.SiteKey).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoadmapItem{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.roadmap.repository.postgre.IncrementVotes: %v", err)
		return model.RoadmapItem{}, err
	}
	return item, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	res, err := r.db.NewDelete().
		Model((*model.RoadmapItem)(nil)).
		Where("ri.id = ?", id).
		Where("ri.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.roadmap.repository.postgre.Delete: %v", err)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
