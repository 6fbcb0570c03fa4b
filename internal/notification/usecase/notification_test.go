package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/model"
	"sitekit-api/internal/notification"
	"sitekit-api/internal/notification/repository"
	pkgLog "sitekit-api/pkg/log"
)

type fakeRepo struct {
	createErr error
	created   []model.Notification
	recent    []model.Notification
	lastLimit int64
	nextID    int64
}

func (r *fakeRepo) Create(_ context.Context, sc model.Scope, opts repository.CreateOptions) (model.Notification, error) {
	if r.createErr != nil {
		return model.Notification{}, r.createErr
	}
	r.nextID++
	n := model.Notification{
		ID:        r.nextID,
		SiteKey:   sc.SiteKey,
		Message:   opts.Message,
		Type:      opts.Type,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	r.created = append(r.created, n)
	return n, nil
}

func (r *fakeRepo) ListRecent(_ context.Context, _ model.Scope, opts repository.ListRecentOptions) ([]model.Notification, error) {
	r.lastLimit = opts.Limit
	return r.recent, nil
}

type fakeBroadcaster struct {
	payloads []any
}

func (b *fakeBroadcaster) Broadcast(_ context.Context, payload any) {
	b.payloads = append(b.payloads, payload)
}

func (b *fakeBroadcaster) Size() int { return 0 }

func TestBroadcastPersistsThenPushes(t *testing.T) {
	repo := &fakeRepo{}
	hub := &fakeBroadcaster{}
	uc := New(pkgLog.NewNoop(), repo, hub)
	sc := model.Scope{SiteKey: "acme"}

	out, err := uc.Broadcast(context.Background(), sc, notification.BroadcastInput{
		Message: "deploy finished",
		Type:    model.NotificationTypeSuccess,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Notification.ID)
	assert.Equal(t, "acme", out.Notification.SiteKey)

	require.Len(t, hub.payloads, 1)
	pushed, ok := hub.payloads[0].(model.Notification)
	require.True(t, ok)
	assert.Equal(t, out.Notification, pushed, "the stored record is what goes on the wire")
}

func TestBroadcastDefaultsTypeToInfo(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(pkgLog.NewNoop(), repo, &fakeBroadcaster{})

	out, err := uc.Broadcast(context.Background(), model.Scope{SiteKey: "acme"}, notification.BroadcastInput{
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, model.NotificationTypeInfo, out.Notification.Type)
}

func TestBroadcastRejectsEmptyMessage(t *testing.T) {
	repo := &fakeRepo{}
	hub := &fakeBroadcaster{}
	uc := New(pkgLog.NewNoop(), repo, hub)

	_, err := uc.Broadcast(context.Background(), model.Scope{SiteKey: "acme"}, notification.BroadcastInput{
		Message: "   ",
	})
	assert.ErrorIs(t, err, notification.ErrEmptyMessage)
	assert.Empty(t, repo.created)
	assert.Empty(t, hub.payloads)
}

func TestBroadcastRejectsUnknownType(t *testing.T) {
	uc := New(pkgLog.NewNoop(), &fakeRepo{}, &fakeBroadcaster{})

	_, err := uc.Broadcast(context.Background(), model.Scope{SiteKey: "acme"}, notification.BroadcastInput{
		Message: "hello",
		Type:    model.NotificationType("shout"),
	})
	assert.ErrorIs(t, err, notification.ErrInvalidType)
}

func TestBroadcastSkipsPushWhenStoreFails(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("insert failed")}
	hub := &fakeBroadcaster{}
	uc := New(pkgLog.NewNoop(), repo, hub)

	_, err := uc.Broadcast(context.Background(), model.Scope{SiteKey: "acme"}, notification.BroadcastInput{
		Message: "hello",
		Type:    model.NotificationTypeError,
	})
	require.Error(t, err)
	assert.Empty(t, hub.payloads, "a record that failed to persist must never be pushed")
}

func TestHistoryClampsLimit(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(pkgLog.NewNoop(), repo, &fakeBroadcaster{})
	sc := model.Scope{SiteKey: "acme"}

	_, err := uc.History(context.Background(), sc, notification.HistoryInput{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(100), repo.lastLimit)

	_, err = uc.History(context.Background(), sc, notification.HistoryInput{Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(defaultHistoryLimit), repo.lastLimit)

	_, err = uc.History(context.Background(), sc, notification.HistoryInput{Limit: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.lastLimit)
}
