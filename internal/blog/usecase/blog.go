package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sitekit-api/internal/blog"
	"sitekit-api/internal/blog/repository"
	"sitekit-api/internal/model"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip blog.GetInput) (blog.GetOutput, error) {
	opts := repository.GetOptions{
		PaginateQuery: ip.PaginateQuery,
		PublishedOnly: !(ip.IncludeDrafts && sc.IsAdmin()),
	}

	posts, pag, err := uc.repo.Get(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.blog.usecase.Get: %v", err)
		return blog.GetOutput{}, err
	}

	return blog.GetOutput{
		Posts:     posts,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, slug string) (model.BlogPost, error) {
	post, err := uc.repo.GetBySlug(ctx, sc, slug)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.BlogPost{}, blog.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "internal.blog.usecase.Detail: %v", err)
		return model.BlogPost{}, err
	}

	// Drafts are only visible to the dashboard.
	if !post.Published && !sc.IsAdmin() {
		return model.BlogPost{}, blog.ErrPostNotFound
	}

	return post, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip blog.CreateInput) (model.BlogPost, error) {
	slug := ip.Slug
	if slug == "" {
		slug = slugify(ip.Title)
	}

	if _, err := uc.repo.GetBySlug(ctx, sc, slug); err == nil {
		return model.BlogPost{}, blog.ErrSlugTaken
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.blog.usecase.Create.GetBySlug: %v", err)
		return model.BlogPost{}, err
	}

	post := model.BlogPost{
		ID:        uuid.NewString(),
		Title:     ip.Title,
		Slug:      slug,
		Body:      ip.Body,
		CoverURL:  ip.CoverURL,
		Published: ip.Published,
	}

	created, err := uc.repo.Create(ctx, sc, post)
	if err != nil {
		uc.l.Errorf(ctx, "internal.blog.usecase.Create: %v", err)
		return model.BlogPost{}, err
	}
	return created, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip blog.UpdateInput) (model.BlogPost, error) {
	post, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.BlogPost{}, blog.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "internal.blog.usecase.Update.Detail: %v", err)
		return model.BlogPost{}, err
	}

	if ip.Title != nil {
		post.Title = *ip.Title
	}
	if ip.Slug != nil {
		post.Slug = *ip.Slug
	}
	if ip.Body != nil {
		post.Body = *ip.Body
	}
	if ip.CoverURL != nil {
		post.CoverURL = ip.CoverURL
	}
	if ip.Published != nil {
		post.Published = *ip.Published
	}

	updated, err := uc.repo.Update(ctx, sc, post)
	if err != nil {
		uc.l.Errorf(ctx, "internal.blog.usecase.Update: %v", err)
		return model.BlogPost{}, err
	}
	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return blog.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "internal.blog.usecase.Delete: %v", err)
		return err
	}
	return nil
}

// slugify lowercases the title and replaces runs of non-alphanumerics with
// single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
