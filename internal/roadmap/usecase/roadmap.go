package usecase

import (
	"context"

	"github.com/google/uuid"

	"sitekit-api/internal/model"
	"sitekit-api/internal/roadmap"
	"sitekit-api/internal/roadmap/repository"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.RoadmapItem, error) {
	items, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.roadmap.usecase.List: %v", err)
		return nil, err
	}
	return items, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip roadmap.CreateInput) (model.RoadmapItem, error) {
	status := ip.Status
	if status == "" {
		status = model.RoadmapStatusPlanned
	}
	if !status.IsValid() {
		return model.RoadmapItem{}, roadmap.ErrInvalidStatus
	}

	item := model.RoadmapItem{
		ID:      uuid.NewString(),
		Title:   ip.Title,
		Details: ip.Details,
		Status:  status,
	}

	created, err := uc.repo.Create(ctx, sc, item)
	if err != nil {
		uc.l.Errorf(ctx, "internal.roadmap.usecase.Create: %v", err)
		return model.RoadmapItem{}, err
	}
	return created, nil
}

func (uc *usecase) UpdateStatus(ctx context.Context, sc model.Scope, ip roadmap.UpdateStatusInput) (model.RoadmapItem, error) {
	if !ip.Status.IsValid() {
		return model.RoadmapItem{}, roadmap.ErrInvalidStatus
	}

	item, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.RoadmapItem{}, roadmap.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.roadmap.usecase.UpdateStatus.Detail: %v", err)
		return model.RoadmapItem{}, err
	}

	item.Status = ip.Status
	updated, err := uc.repo.Update(ctx, sc, item)
	if err != nil {
		uc.l.Errorf(ctx, "internal.roadmap.usecase.UpdateStatus: %v", err)
		return model.RoadmapItem{}, err
	}
	return updated, nil
}

func (uc *usecase) Vote(ctx context.Context, sc model.Scope, id string) (model.RoadmapItem, error) {
	item, err := uc.repo.IncrementVotes(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.RoadmapItem{}, roadmap.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.roadmap.usecase.Vote: %v", err)
		return model.RoadmapItem{}, err
	}
	return item, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return roadmap.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.roadmap.usecase.Delete: %v", err)
		return err
	}
	return nil
}
