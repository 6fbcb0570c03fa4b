package usecase

import (
	"sitekit-api/internal/auth"
	"sitekit-api/internal/auth/repository"
	pkgLog "sitekit-api/pkg/log"
	"sitekit-api/pkg/scope"
)

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	jwtManager scope.Manager
}

func New(l pkgLog.Logger, repo repository.Repository, jwtManager scope.Manager) auth.UseCase {
	return &usecase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
	}
}
