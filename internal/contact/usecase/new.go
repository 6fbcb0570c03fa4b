package usecase

import (
	"sitekit-api/internal/contact"
	"sitekit-api/internal/contact/repository"
	"sitekit-api/internal/notification"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	notifUC notification.UseCase
}

func New(l pkgLog.Logger, repo repository.Repository, notifUC notification.UseCase) contact.UseCase {
	return &usecase{
		l:       l,
		repo:    repo,
		notifUC: notifUC,
	}
}
