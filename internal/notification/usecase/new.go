package usecase

import (
	"sitekit-api/internal/notification"
	"sitekit-api/internal/notification/repository"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
	hub  notification.Broadcaster
}

func New(l pkgLog.Logger, repo repository.Repository, hub notification.Broadcaster) notification.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
		hub:  hub,
	}
}
