package usecase

import (
	"sitekit-api/internal/roadmap"
	"sitekit-api/internal/roadmap/repository"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) roadmap.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
