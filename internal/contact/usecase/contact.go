package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sitekit-api/internal/contact"
	"sitekit-api/internal/contact/repository"
	"sitekit-api/internal/model"
	"sitekit-api/internal/notification"
)

// Create stores a contact-form submission and pushes a real-time
// notification. The push is best-effort and never fails the submission.
func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip contact.CreateInput) (model.ContactMessage, error) {
	m := model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    ip.Name,
		Email:   ip.Email,
		Subject: ip.Subject,
		Body:    ip.Body,
	}

	created, err := uc.repo.Create(ctx, sc, m)
	if err != nil {
		uc.l.Errorf(ctx, "internal.contact.usecase.Create: %v", err)
		return model.ContactMessage{}, err
	}

	if _, err := uc.notifUC.Broadcast(ctx, sc, notification.BroadcastInput{
		Message: fmt.Sprintf("New message from %s: %s", created.Name, created.Subject),
		Type:    model.NotificationTypeInfo,
	}); err != nil {
		uc.l.Warnf(ctx, "internal.contact.usecase.Create.Broadcast: %v", err)
	}

	return created, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip contact.GetInput) (contact.GetOutput, error) {
	ms, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		PaginateQuery: ip.PaginateQuery,
		UnreadOnly:    ip.UnreadOnly,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.contact.usecase.Get: %v", err)
		return contact.GetOutput{}, err
	}

	return contact.GetOutput{
		Messages:  ms,
		Paginator: pag,
	}, nil
}

func (uc *usecase) MarkRead(ctx context.Context, sc model.Scope, id string) (model.ContactMessage, error) {
	m, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.ContactMessage{}, contact.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.contact.usecase.MarkRead.Detail: %v", err)
		return model.ContactMessage{}, err
	}

	if m.Read {
		return m, nil
	}

	m.Read = true
	updated, err := uc.repo.Update(ctx, sc, m)
	if err != nil {
		uc.l.Errorf(ctx, "internal.contact.usecase.MarkRead: %v", err)
		return model.ContactMessage{}, err
	}
	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return contact.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.contact.usecase.Delete: %v", err)
		return err
	}
	return nil
}
