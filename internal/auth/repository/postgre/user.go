package postgre

import (
	"context"
	"database/sql"
	"errors"

	"sitekit-api/internal/auth/repository"
	"sitekit-api/internal/model"
)

func (r *implRepository) GetByUsername(ctx context.Context, sc model.Scope, username string) (model.User, error) {
	var u model.User
	err := r.db.NewSelect().
		Model(&u).
		Where("u.site_key = ?", sc.SiteKey).
		Where("u.username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.auth.repository.postgre.GetByUsername: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	var u model.User
	err := r.db.NewSelect().
		Model(&u).
		Where("u.site_key = ?", sc.SiteKey).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.auth.repository.postgre.Detail: %v", err)
		return model.User{}, err
	}
	return u, nil
}
