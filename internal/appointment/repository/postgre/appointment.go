package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sitekit-api/internal/appointment/repository"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, a model.Appointment) (model.Appointment, error) {
	a.SiteKey = sc.SiteKey
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(&a).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.appointment.repository.postgre.Create: %v", err)
		return model.Appointment{}, err
	}
	return a, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Appointment, paginator.Paginator, error) {
	opts.Adjust()

	as := make([]model.Appointment, 0, opts.Limit)
	q := r.db.NewSelect().
		Model(&as).
		Where("a.site_key = ?", sc.SiteKey)
	if opts.Status != "" {
		q = q.Where("a.status = ?", opts.Status)
	}

	total, err := q.
		OrderExpr("a.scheduled_at ASC").
		Limit(int(opts.Limit)).
		Offset(int(opts.Offset())).
		ScanAndCount(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.appointment.repository.postgre.Get: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return as, paginator.Paginator{
		Total:       int64(total),
		Count:       int64(len(as)),
		PerPage:     opts.Limit,
		CurrentPage: opts.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Appointment, error) {
	var a model.Appointment
	err := r.db.NewSelect().
		Model(&a).
		Where("a.site_key = ?", sc.SiteKey).
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Appointment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.appointment.repository.postgre.Detail: %v", err)
		return model.Appointment{}, err
	}
	return a, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, a model.Appointment) (model.Appointment, error) {
	a.UpdatedAt = time.Now().UTC()

	res, err := r.db.NewUpdate().
		Model(&a).
		WherePK().
		Where("a.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.appointment.repository.postgre.Update: %v", err)
		return model.Appointment{}, err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return model.Appointment{}, repository.ErrNotFound
	}
	return a, nil
}
