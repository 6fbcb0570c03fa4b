package usecase

import (
	"sitekit-api/internal/blog"
	"sitekit-api/internal/blog/repository"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) blog.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
