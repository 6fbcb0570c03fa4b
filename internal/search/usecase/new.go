package usecase

import (
	"sitekit-api/config"
	"sitekit-api/internal/search"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l   pkgLog.Logger
	cfg config.SiteConfig
}

func New(l pkgLog.Logger, cfg config.SiteConfig) search.UseCase {
	return &usecase{
		l:   l,
		cfg: cfg,
	}
}
