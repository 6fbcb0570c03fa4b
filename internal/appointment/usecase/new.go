package usecase

import (
	"sitekit-api/internal/appointment"
	"sitekit-api/internal/appointment/repository"
	"sitekit-api/internal/notification"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	notifUC notification.UseCase
}

func New(l pkgLog.Logger, repo repository.Repository, notifUC notification.UseCase) appointment.UseCase {
	return &usecase{
		l:       l,
		repo:    repo,
		notifUC: notifUC,
	}
}
