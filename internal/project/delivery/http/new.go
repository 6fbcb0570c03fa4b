package http

import (
	"sitekit-api/internal/project"
	"sitekit-api/pkg/discord"
	pkgLog "sitekit-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc project.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc project.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
