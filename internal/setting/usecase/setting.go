package usecase

import (
	"context"

	"sitekit-api/internal/model"
	"sitekit-api/internal/setting"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope) (map[string]string, error) {
	settings, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.setting.usecase.Get: %v", err)
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return values, nil
}

func (uc *usecase) Upsert(ctx context.Context, sc model.Scope, ip setting.UpsertInput) (map[string]string, error) {
	if len(ip.Values) == 0 {
		return nil, setting.ErrEmptyInput
	}

	settings := make([]model.SiteSetting, 0, len(ip.Values))
	for k, v := range ip.Values {
		settings = append(settings, model.SiteSetting{
			Key:   k,
			Value: v,
		})
	}

	if err := uc.repo.Upsert(ctx, sc, settings); err != nil {
		uc.l.Errorf(ctx, "internal.setting.usecase.Upsert: %v", err)
		return nil, err
	}

	return uc.Get(ctx, sc)
}
