package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sitekit-api/internal/model"
	"sitekit-api/internal/project/repository"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.Project, error) {
	ps := make([]model.Project, 0)
	err := r.db.NewSelect().
		Model(&ps).
		Where("p.site_key = ?", sc.SiteKey).
		OrderExpr("p.sort_order ASC, p.created_at DESC").
		Scan(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.List: %v", err)
		return nil, err
	}
	return ps, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	var p model.Project
	err := r.db.NewSelect().
		Model(&p).
		Where("p.site_key = ?", sc.SiteKey).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.project.repository.postgre.Detail: %v", err)
		return model.Project{}, err
	}
	return p, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, p model.Project) (model.Project, error) {
	p.SiteKey = sc.SiteKey
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(&p).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Create: %v", err)
		return model.Project{}, err
	}
	return p, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, p model.Project) (model.Project, error) {
	p.UpdatedAt = time.Now().UTC()

	res, err := r.db.NewUpdate().
		Model(&p).
		WherePK().
		Where("p.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Update: %v", err)
		return model.Project{}, err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return model.Project{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	res, err := r.db.NewDelete().
		Model((*model.Project)(nil)).
		Where("p.id = ?", id).
		Where("p.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Delete: %v", err)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
