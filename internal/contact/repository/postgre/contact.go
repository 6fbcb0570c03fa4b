package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sitekit-api/internal/contact/repository"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, m model.ContactMessage) (model.ContactMessage, error) {
	m.SiteKey = sc.SiteKey
	m.CreatedAt = time.Now().UTC()

	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.contact.repository.postgre.Create: %v", err)
		return model.ContactMessage{}, err
	}
	return m, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.ContactMessage, paginator.Paginator, error) {
	opts.Adjust()

	ms := make([]model.ContactMessage, 0, opts.Limit)
	q := r.db.NewSelect().
		Model(&ms).
		Where("cm.site_key = ?", sc.SiteKey)
	if opts.UnreadOnly {
		q = q.Where("cm.read = FALSE")
	}

	total, err := q.
		OrderExpr("cm.created_at DESC").
		Limit(int(opts.Limit)).
		Offset(int(opts.Offset())).
		ScanAndCount(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.contact.repository.postgre.Get: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return ms, paginator.Paginator{
		Total:       int64(total),
		Count:       int64(len(ms)),
		PerPage:     opts.Limit,
		CurrentPage: opts.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.db.NewSelect().
		Model(&m).
		Where("cm.site_key = ?", sc.SiteKey).
		Where("cm.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContactMessage{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.contact.repository.postgre.Detail: %v", err)
		return model.ContactMessage{}, err
	}
	return m, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, m model.ContactMessage) (model.ContactMessage, error) {
	res, err := r.db.NewUpdate().
		Model(&m).
		WherePK().
		Where("cm.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.contact.repository.postgre.Update: %v", err)
		return model.ContactMessage{}, err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return model.ContactMessage{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	res, err := r.db.NewDelete().
		Model((*model.ContactMessage)(nil)).
		Where("cm.id = ?", id).
		Where("cm.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.contact.repository.postgre.Delete: %v", err)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
