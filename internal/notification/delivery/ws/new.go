package ws

import (
	"sitekit-api/internal/hub"
	pkgLog "sitekit-api/pkg/log"
)

// Config carries the transport tuning for upgraded connections.
type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	Connection      hub.WSConfig
}

type Handler struct {
	l   pkgLog.Logger
	hub *hub.Hub
	cfg Config
}

func New(l pkgLog.Logger, h *hub.Hub, cfg Config) *Handler {
	return &Handler{
		l:   l,
		hub: h,
		cfg: cfg,
	}
}
