package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/blog"
	"sitekit-api/internal/blog/repository"
	"sitekit-api/internal/model"
	pkgLog "sitekit-api/pkg/log"
	"sitekit-api/pkg/paginator"
)

type fakeRepo struct {
	posts map[string]model.BlogPost // keyed by id
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[string]model.BlogPost{}}
}

func (r *fakeRepo) Get(_ context.Context, sc model.Scope, opts repository.GetOptions) ([]model.BlogPost, paginator.Paginator, error) {
	var out []model.BlogPost
	for _, p := range r.posts {
		if p.SiteKey != sc.SiteKey {
			continue
		}
		if opts.PublishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

func (r *fakeRepo) Detail(_ context.Context, sc model.Scope, id string) (model.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok || p.SiteKey != sc.SiteKey {
		return model.BlogPost{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) GetBySlug(_ context.Context, sc model.Scope, slug string) (model.BlogPost, error) {
	for _, p := range r.posts {
		if p.SiteKey == sc.SiteKey && p.Slug == slug {
			return p, nil
		}
	}
	return model.BlogPost{}, repository.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, sc model.Scope, post model.BlogPost) (model.BlogPost, error) {
	post.SiteKey = sc.SiteKey
	r.posts[post.ID] = post
	return post, nil
}

func (r *fakeRepo) Update(_ context.Context, sc model.Scope, post model.BlogPost) (model.BlogPost, error) {
	if _, ok := r.posts[post.ID]; !ok {
		return model.BlogPost{}, repository.ErrNotFound
	}
	r.posts[post.ID] = post
	return post, nil
}

func (r *fakeRepo) Delete(_ context.Context, sc model.Scope, id string) error {
	p, ok := r.posts[id]
	if !ok || p.SiteKey != sc.SiteKey {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestCreateGeneratesSlug(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())
	sc := model.Scope{SiteKey: "acme"}

	post, err := uc.Create(context.Background(), sc, blog.CreateInput{
		Title: "Grand Opening -- See You There!",
		Body:  "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "grand-opening-see-you-there", post.Slug)
	assert.NotEmpty(t, post.ID)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	repo := newFakeRepo()
	uc := New(pkgLog.NewNoop(), repo)
	sc := model.Scope{SiteKey: "acme"}

	_, err := uc.Create(context.Background(), sc, blog.CreateInput{Title: "Hello", Body: "a"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), sc, blog.CreateInput{Title: "Hello", Body: "b"})
	assert.ErrorIs(t, err, blog.ErrSlugTaken)
}

func TestDetailHidesDraftsFromVisitors(t *testing.T) {
	repo := newFakeRepo()
	uc := New(pkgLog.NewNoop(), repo)
	admin := model.Scope{SiteKey: "acme", UserID: "u-1", Role: model.RoleAdmin}

	post, err := uc.Create(context.Background(), admin, blog.CreateInput{
		Title:     "Draft",
		Body:      "wip",
		Published: false,
	})
	require.NoError(t, err)

	_, err = uc.Detail(context.Background(), model.Scope{SiteKey: "acme"}, post.Slug)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)

	got, err := uc.Detail(context.Background(), admin, post.Slug)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestGetPublishedOnlyForVisitors(t *testing.T) {
	repo := newFakeRepo()
	uc := New(pkgLog.NewNoop(), repo)
	admin := model.Scope{SiteKey: "acme", UserID: "u-1", Role: model.RoleAdmin}

	_, err := uc.Create(context.Background(), admin, blog.CreateInput{Title: "Live", Body: "x", Published: true})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), admin, blog.CreateInput{Title: "Draft", Body: "y"})
	require.NoError(t, err)

	visitor, err := uc.Get(context.Background(), model.Scope{SiteKey: "acme"}, blog.GetInput{IncludeDrafts: true})
	require.NoError(t, err)
	assert.Len(t, visitor.Posts, 1, "include_drafts must be ignored for non-admin callers")

	dashboard, err := uc.Get(context.Background(), admin, blog.GetInput{IncludeDrafts: true})
	require.NoError(t, err)
	assert.Len(t, dashboard.Posts, 2)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":        "hello-world",
		"  Spaces  Galore  ": "spaces-galore",
		"100% Organic!":      "100-organic",
		"já-está":            "j-est",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), "slugify(%q)", in)
	}
}
