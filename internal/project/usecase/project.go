package usecase

import (
	"context"

	"github.com/google/uuid"

	"sitekit-api/internal/model"
	"sitekit-api/internal/project"
	"sitekit-api/internal/project/repository"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.Project, error) {
	ps, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.project.usecase.List: %v", err)
		return nil, err
	}
	return ps, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip project.CreateInput) (model.Project, error) {
	p := model.Project{
		ID:          uuid.NewString(),
		Title:       ip.Title,
		Description: ip.Description,
		ImageURL:    ip.ImageURL,
		Link:        ip.Link,
		SortOrder:   ip.SortOrder,
	}

	created, err := uc.repo.Create(ctx, sc, p)
	if err != nil {
		uc.l.Errorf(ctx, "internal.project.usecase.Create: %v", err)
		return model.Project{}, err
	}
	return created, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip project.UpdateInput) (model.Project, error) {
	p, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Project{}, project.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.project.usecase.Update.Detail: %v", err)
		return model.Project{}, err
	}

	if ip.Title != nil {
		p.Title = *ip.Title
	}
	if ip.Description != nil {
		p.Description = *ip.Description
	}
	if ip.ImageURL != nil {
		p.ImageURL = ip.ImageURL
	}
	if ip.Link != nil {
		p.Link = ip.Link
	}
	if ip.SortOrder != nil {
		p.SortOrder = *ip.SortOrder
	}

	updated, err := uc.repo.Update(ctx, sc, p)
	if err != nil {
		uc.l.Errorf(ctx, "internal.project.usecase.Update: %v", err)
		return model.Project{}, err
	}
	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return project.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.project.usecase.Delete: %v", err)
		return err
	}
	return nil
}
