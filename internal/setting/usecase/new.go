package usecase

import (
	"sitekit-api/internal/setting"
	"sitekit-api/internal/setting/repository"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) setting.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
