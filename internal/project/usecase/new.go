package usecase

import (
	"sitekit-api/internal/project"
	"sitekit-api/internal/project/repository"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) project.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
