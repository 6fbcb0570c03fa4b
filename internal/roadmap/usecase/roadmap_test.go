package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/model"
	"sitekit-api/internal/roadmap"
	"sitekit-api/internal/roadmap/repository"
	pkgLog "sitekit-api/pkg/log"
)

type fakeRepo struct {
	items map[string]model.RoadmapItem
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]model.RoadmapItem)}
}

func (r *fakeRepo) List(_ context.Context, sc model.Scope) ([]model.RoadmapItem, error) {
	out := make([]model.RoadmapItem, 0)
	for _, it := range r.items {
		if it.SiteKey == sc.SiteKey {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) Detail(_ context.Context, sc model.Scope, id string) (model.RoadmapItem, error) {
	it, ok := r.items[id]
	if !ok || it.SiteKey != sc.SiteKey {
		return model.RoadmapItem{}, repository.ErrNotFound
	}
	return it, nil
}

func (r *fakeRepo) Create(_ context.Context, sc model.Scope, item model.RoadmapItem) (model.RoadmapItem, error) {
	item.SiteKey = sc.SiteKey
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeRepo) Update(_ context.Context, sc model.Scope, item model.RoadmapItem) (model.RoadmapItem, error) {
	if _, ok := r.items[item.ID]; !ok {
		return model.RoadmapItem{}, repository.ErrNotFound
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeRepo) IncrementVotes(_ context.Context, sc model.Scope, id string) (model.RoadmapItem, error) {
	it, ok := r.items[id]
	if !ok || it.SiteKey != sc.SiteKey {
		return model.RoadmapItem{}, repository.ErrNotFound
	}
	it.Votes++
	r.items[id] = it
	return it, nil
}

func (r *fakeRepo) Delete(_ context.Context, sc model.Scope, id string) error {
	it, ok := r.items[id]
	if !ok || it.SiteKey != sc.SiteKey {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func TestCreateDefaultsToPlanned(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())

	item, err := uc.Create(context.Background(), model.Scope{SiteKey: "acme"}, roadmap.CreateInput{
		Title:   "Online gift cards",
		Details: "Sell gift cards from the booking page",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, model.RoadmapStatusPlanned, item.Status)
	assert.Zero(t, item.Votes)
}

func TestCreateInvalidStatus(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())

	_, err := uc.Create(context.Background(), model.Scope{SiteKey: "acme"}, roadmap.CreateInput{
		Title:   "X",
		Details: "Y",
		Status:  "someday",
	})
	assert.ErrorIs(t, err, roadmap.ErrInvalidStatus)
}

func TestVote(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())
	sc := model.Scope{SiteKey: "acme"}

	item, err := uc.Create(context.Background(), sc, roadmap.CreateInput{Title: "X", Details: "Y"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		item, err = uc.Vote(context.Background(), sc, item.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), item.Votes)
}

func TestVoteIsTenantScoped(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())

	item, err := uc.Create(context.Background(), model.Scope{SiteKey: "acme"}, roadmap.CreateInput{Title: "X", Details: "Y"})
	require.NoError(t, err)

	_, err = uc.Vote(context.Background(), model.Scope{SiteKey: "other"}, item.ID)
	assert.ErrorIs(t, err, roadmap.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())
	sc := model.Scope{SiteKey: "acme"}

	item, err := uc.Create(context.Background(), sc, roadmap.CreateInput{Title: "X", Details: "Y"})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), sc, roadmap.UpdateStatusInput{
		ID:     item.ID,
		Status: model.RoadmapStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoadmapStatusInProgress, updated.Status)

	_, err = uc.UpdateStatus(context.Background(), sc, roadmap.UpdateStatusInput{
		ID:     item.ID,
		Status: "shipped",
	})
	assert.ErrorIs(t, err, roadmap.ErrInvalidStatus)

	_, err = uc.UpdateStatus(context.Background(), sc, roadmap.UpdateStatusInput{
		ID:     "missing",
		Status: model.RoadmapStatusDone,
	})
	assert.ErrorIs(t, err, roadmap.ErrNotFound)
}
