package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sitekit-api/internal/blog/repository"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.BlogPost, paginator.Paginator, error) {
	opts.Adjust()

	posts := make([]model.BlogPost, 0, opts.Limit)
	q := r.db.NewSelect().
		Model(&posts).
		Where("bp.site_key = ?", sc.SiteKey)
	if opts.PublishedOnly {
		q = q.Where("bp.published = TRUE")
	}

	total, err := q.
		OrderExpr("bp.created_at DESC").
		Limit(int(opts.Limit)).
		Offset(int(opts.Offset())).
		ScanAndCount(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.blog.repository.postgre.Get: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return posts, paginator.Paginator{
		Total:       int64(total),
		Count:       int64(len(posts)),
		PerPage:     opts.Limit,
		CurrentPage: opts.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.NewSelect().
		Model(&post).
		Where("bp.site_key = ?", sc.SiteKey).
		Where("bp.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BlogPost{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.blog.repository.postgre.Detail: %v", err)
		return model.BlogPost{}, err
	}
	return post, nil
}

func (r *implRepository) GetBySlug(ctx context.Context, sc model.Scope, slug string) (model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.NewSelect().
		Model(&post).
		Where("bp.site_key = ?", sc.SiteKey).
		Where("bp.slug = ?", slug).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BlogPost{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.blog.repository.postgre.GetBySlug: %v", err)
		return model.BlogPost{}, err
	}
	return post, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, post model.BlogPost) (model.BlogPost, error) {
	post.SiteKey = sc.SiteKey
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(&post).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "internal.blog.repository.postgre.Create: %v", err)
		return model.BlogPost{}, err
	}
	return post, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, post model.BlogPost) (model.BlogPost, error) {
	post.UpdatedAt = time.Now().UTC()

	res, err := r.db.NewUpdate().
		Model(&post).
		WherePK().
		Where("bp.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.blog.repository.postgre.Update: %v", err)
		return model.BlogPost{}, err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return model.BlogPost{}, repository.ErrNotFound
	}
	return post, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	res, err := r.db.NewDelete().
		Model((*model.BlogPost)(nil)).
		Where("bp.id = ?", id).
		Where("bp.site_key = ?", sc.SiteKey).
		Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.blog.repository.postgre.Delete: %v", err)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
