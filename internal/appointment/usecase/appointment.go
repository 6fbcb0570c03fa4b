package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sitekit-api/internal/appointment"
	"sitekit-api/internal/appointment/repository"
	"sitekit-api/internal/model"
	"sitekit-api/internal/notification"
)

// Create books an appointment and pushes a real-time notification so the
// dashboard sees new bookings without polling. The notification is
// best-effort: a failed push never fails the booking.
func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip appointment.CreateInput) (model.Appointment, error) {
	if ip.ScheduledAt.Before(time.Now()) {
		return model.Appointment{}, appointment.ErrScheduledInPast
	}

	a := model.Appointment{
		ID:            uuid.NewString(),
		CustomerName:  ip.CustomerName,
		CustomerEmail: ip.CustomerEmail,
		CustomerPhone: ip.CustomerPhone,
		Service:       ip.Service,
		ScheduledAt:   ip.ScheduledAt,
		Status:        model.AppointmentStatusPending,
		Note:          ip.Note,
	}

	created, err := uc.repo.Create(ctx, sc, a)
	if err != nil {
		uc.l.Errorf(ctx, "internal.appointment.usecase.Create: %v", err)
		return model.Appointment{}, err
	}

	if _, err := uc.notifUC.Broadcast(ctx, sc, notification.BroadcastInput{
		Message: fmt.Sprintf("New booking from %s for %s", created.CustomerName, created.Service),
		Type:    model.NotificationTypeInfo,
	}); err != nil {
		uc.l.Warnf(ctx, "internal.appointment.usecase.Create.Broadcast: %v", err)
	}

	return created, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip appointment.GetInput) (appointment.GetOutput, error) {
	if ip.Status != "" && !ip.Status.IsValid() {
		return appointment.GetOutput{}, appointment.ErrInvalidStatus
	}

	as, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		PaginateQuery: ip.PaginateQuery,
		Status:        ip.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.appointment.usecase.Get: %v", err)
		return appointment.GetOutput{}, err
	}

	return appointment.GetOutput{
		Appointments: as,
		Paginator:    pag,
	}, nil
}

func (uc *usecase) UpdateStatus(ctx context.Context, sc model.Scope, ip appointment.UpdateStatusInput) (model.Appointment, error) {
	if !ip.Status.IsValid() {
		return model.Appointment{}, appointment.ErrInvalidStatus
	}

	a, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Appointment{}, appointment.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.appointment.usecase.UpdateStatus.Detail: %v", err)
		return model.Appointment{}, err
	}

	a.Status = ip.Status
	updated, err := uc.repo.Update(ctx, sc, a)
	if err != nil {
		uc.l.Errorf(ctx, "internal.appointment.usecase.UpdateStatus: %v", err)
		return model.Appointment{}, err
	}
	return updated, nil
}
