package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/appointment"
	"sitekit-api/internal/appointment/repository"
	"sitekit-api/internal/model"
	"sitekit-api/internal/notification"
	pkgLog "sitekit-api/pkg/log"
	"sitekit-api/pkg/paginator"
)

type fakeRepo struct {
	appointments map[string]model.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{appointments: map[string]model.Appointment{}}
}

func (r *fakeRepo) Create(_ context.Context, sc model.Scope, a model.Appointment) (model.Appointment, error) {
	a.SiteKey = sc.SiteKey
	r.appointments[a.ID] = a
	return a, nil
}

func (r *fakeRepo) Get(_ context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Appointment, paginator.Paginator, error) {
	var out []model.Appointment
	for _, a := range r.appointments {
		if a.SiteKey != sc.SiteKey {
			continue
		}
		if opts.Status != "" && a.Status != opts.Status {
			continue
		}
		out = append(out, a)
	}
	return out, paginator.Paginator{Total: int64(len(out))}, nil
}

func (r *fakeRepo) Detail(_ context.Context, sc model.Scope, id string) (model.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok || a.SiteKey != sc.SiteKey {
		return model.Appointment{}, repository.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) Update(_ context.Context, sc model.Scope, a model.Appointment) (model.Appointment, error) {
	if _, ok := r.appointments[a.ID]; !ok {
		return model.Appointment{}, repository.ErrNotFound
	}
	r.appointments[a.ID] = a
	return a, nil
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

func TestCreateBookingEmitsNotification(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	uc := New(pkgLog.NewNoop(), repo, notifier)
	sc := model.Scope{SiteKey: "acme"}

	a, err := uc.Create(context.Background(), sc, appointment.CreateInput{
		CustomerName:  "Pat",
		CustomerEmail: "pat@example.com",
		Service:       "haircut",
		ScheduledAt:   time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, a.Status)

	require.Len(t, notifier.broadcasts, 1)
	assert.Contains(t, notifier.broadcasts[0].Message, "Pat")
	assert.Contains(t, notifier.broadcasts[0].Message, "haircut")
}

func TestCreateRejectsPastSchedule(t *testing.T) {
	uc := New(pkgLog.NewNoop(), newFakeRepo(), &fakeNotifier{})

	_, err := uc.Create(context.Background(), model.Scope{SiteKey: "acme"}, appointment.CreateInput{
		CustomerName:  "Pat",
		CustomerEmail: "pat@example.com",
		Service:       "haircut",
		ScheduledAt:   time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, appointment.ErrScheduledInPast)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := New(pkgLog.NewNoop(), repo, &fakeNotifier{})
	sc := model.Scope{SiteKey: "acme"}

	a, err := uc.Create(context.Background(), sc, appointment.CreateInput{
		CustomerName:  "Pat",
		CustomerEmail: "pat@example.com",
		Service:       "haircut",
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), sc, appointment.UpdateStatusInput{
		ID:     a.ID,
		Status: model.AppointmentStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, updated.Status)

	_, err = uc.UpdateStatus(context.Background(), sc, appointment.UpdateStatusInput{
		ID:     a.ID,
		Status: model.AppointmentStatus("lost"),
	})
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)

	_, err = uc.UpdateStatus(context.Background(), sc, appointment.UpdateStatusInput{
		ID:     "missing",
		Status: model.AppointmentStatusCancelled,
	})
	assert.ErrorIs(t, err, appointment.ErrNotFound)
}
