package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/contact"
	"sitekit-api/internal/contact/repository"
	"sitekit-api/internal/model"
	"sitekit-api/internal/notification"
	pkgLog "sitekit-api/pkg/log"
	"sitekit-api/pkg/paginator"
)

type fakeRepo struct {
	messages map[string]model.ContactMessage

	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{messages: make(map[string]model.ContactMessage)}
}

func (r *fakeRepo) Create(_ context.Context, sc model.Scope, m model.ContactMessage) (model.ContactMessage, error) {
	if r.createErr != nil {
		return model.ContactMessage{}, r.createErr
	}
	m.SiteKey = sc.SiteKey
	r.messages[m.ID] = m
	return m, nil
}

func (r *fakeRepo) Get(_ context.Context, sc model.Scope, opts repository.GetOptions) ([]model.ContactMessage, paginator.Paginator, error) {
	out := make([]model.ContactMessage, 0)
	for _, m := range r.messages {
		if m.SiteKey != sc.SiteKey {
			continue
		}
		if opts.UnreadOnly && m.Read {
			continue
		}
		out = append(out, m)
	}
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

func (r *fakeRepo) Detail(_ context.Context, sc model.Scope, id string) (model.ContactMessage, error) {
	m, ok := r.messages[id]
	if !ok || m.SiteKey != sc.SiteKey {
		return model.ContactMessage{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *fakeRepo) Update(_ context.Context, sc model.Scope, m model.ContactMessage) (model.ContactMessage, error) {
	if _, ok := r.messages[m.ID]; !ok {
		return model.ContactMessage{}, repository.ErrNotFound
	}
	r.messages[m.ID] = m
	return m, nil
}

func (r *fakeRepo) Delete(_ context.Context, sc model.Scope, id string) error {
	m, ok := r.messages[id]
	if !ok || m.SiteKey != sc.SiteKey {
		return repository.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

type fakeNotifier struct {
	broadcasts []notification.BroadcastInput
}

func (n *fakeNotifier) Broadcast(_ context.Context, _ model.Scope, ip notification.BroadcastInput) (notification.NotificationOutput, error) {
	n.broadcasts = append(n.broadcasts, ip)
	return notification.NotificationOutput{}, nil
}

func (n *fakeNotifier) History(_ context.Context, _ model.Scope, _ notification.HistoryInput) ([]model.Notification, error) {
	return nil, nil
}

func TestCreateEmitsNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := New(pkgLog.NewNoop(), newFakeRepo(), notifier)
	sc := model.Scope{SiteKey: "acme"}

	created, err := uc.Create(context.Background(), sc, contact.CreateInput{
		Name:    "Pat",
		Email:   "pat@example.com",
		Subject: "Opening hours",
		Body:    "Are you open on Sundays?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Read)

	require.Len(t, notifier.broadcasts, 1)
	assert.Contains(t, notifier.broadcasts[0].Message, "Pat")
	assert.Contains(t, notifier.broadcasts[0].Message, "Opening hours")
}

func TestCreateStoreFailureSkipsNotification(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = assert.AnError
	notifier := &fakeNotifier{}
	uc := New(pkgLog.NewNoop(), repo, notifier)

	_, err := uc.Create(context.Background(), model.Scope{SiteKey: "acme"}, contact.CreateInput{
		Name:    "Pat",
		Subject: "Hello",
	})
	require.Error(t, err)
	assert.Empty(t, notifier.broadcasts, "nothing should be pushed when the store rejects the message")
}

func TestMarkReadIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := New(pkgLog.NewNoop(), repo, &fakeNotifier{})
	sc := model.Scope{SiteKey: "acme"}

	created, err := uc.Create(context.Background(), sc, contact.CreateInput{Name: "Pat", Subject: "Hi"})
	require.NoError(t, err)

	first, err := uc.MarkRead(context.Background(), sc, created.ID)
	require.NoError(t, err)
	assert.True(t, first.Read)

	second, err := uc.MarkRead(context.Background(), sc, created.ID)
	require.NoError(t, err)
	assert.True(t, second.Read)
}

func TestMarkReadNotFound(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo(), &fakeNotifier{})

	_, err := uc.MarkRead(context.Background(), model.Scope{SiteKey: "acme"}, "missing")
	assert.ErrorIs(t, err, contact.ErrNotFound)
}

func TestGetUnreadOnly(t *testing.T) {
	repo := newFakeRepo()
	uc := New(pkgLog.NewNoop(), repo, &fakeNotifier{})
	sc := model.Scope{SiteKey: "acme"}

	first, err := uc.Create(context.Background(), sc, contact.CreateInput{Name: "A", Subject: "one"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), sc, contact.CreateInput{Name: "B", Subject: "two"})
	require.NoError(t, err)

	_, err = uc.MarkRead(context.Background(), sc, first.ID)
	require.NoError(t, err)

	out, err := uc.Get(context.Background(), sc, contact.GetInput{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, "two", out.Messages[0].Subject)
}
