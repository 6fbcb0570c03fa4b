package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/model"
	"sitekit-api/internal/setting"
	pkgLog "sitekit-api/pkg/log"
)

type fakeRepo struct {
	values map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{values: make(map[string]string)}
}

func (r *fakeRepo) List(_ context.Context, _ model.Scope) ([]model.SiteSetting, error) {
	out := make([]model.SiteSetting, 0, len(r.values))
	for k, v := range r.values {
		out = append(out, model.SiteSetting{Key: k, Value: v})
	}
	return out, nil
}

func (r *fakeRepo) Upsert(_ context.Context, _ model.Scope, settings []model.SiteSetting) error {
	for _, s := range settings {
		r.values[s.Key] = s.Value
	}
	return nil
}

func TestUpsertMergesIntoExisting(t *testing.T) {
	repo := newFakeRepo()
	repo.values["site_name"] = "Acme Barbers"
	repo.values["phone"] = "555-0100"

	uc := New(pkgLog.NewNoop(), repo)
	sc := model.Scope{SiteKey: "acme"}

	merged, err := uc.Upsert(context.Background(), sc, setting.UpsertInput{
		Values: map[string]string{
			"phone": "555-0199",
			"email": "hello@acme.example",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"site_name": "Acme Barbers",
		"phone":     "555-0199",
		"email":     "hello@acme.example",
	}, merged)
}

func TestUpsertEmptyInput(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())

	_, err := uc.Upsert(context.Background(), model.Scope{SiteKey: "acme"}, setting.UpsertInput{})
	assert.ErrorIs(t, err, setting.ErrEmptyInput)
}

func TestGetEmpty(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo())

	values, err := uc.Get(context.Background(), model.Scope{SiteKey: "acme"})
	require.NoError(t, err)
	assert.Empty(t, values)
}
