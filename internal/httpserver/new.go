package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"

	"sitekit-api/config"
	"sitekit-api/internal/hub"
	"sitekit-api/pkg/discord"
	pkgLog "sitekit-api/pkg/log"
	pkgMinio "sitekit-api/pkg/minio"
	"sitekit-api/pkg/scope"
)

// HTTPServer wires the delivery layer together.
// New() only validates dependencies; Run() (in httpserver.go) maps the
// handlers and serves until a shutdown signal.
type HTTPServer struct {
	gin    *gin.Engine
	logger pkgLog.Logger
	port   int
	mode   string

	// Storage
	db      *bun.DB
	storage pkgMinio.MinIO

	// Push
	hub      *hub.Hub
	wsConfig config.WebSocketConfig

	// Auth & security
	jwtMgr scope.Manager

	// Domain configuration
	minioCfg  config.MinIOConfig
	stripeCfg config.StripeConfig
	siteCfg   config.SiteConfig

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	DB      *bun.DB
	Storage pkgMinio.MinIO

	Hub      *hub.Hub
	WSConfig config.WebSocketConfig

	JWTManager scope.Manager

	MinIO  config.MinIOConfig
	Stripe config.StripeConfig
	Site   config.SiteConfig

	Discord discord.IDiscord
}

// New creates a new HTTPServer. It does not start any goroutines.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:    gin.New(),
		logger: logger,
		port:   cfg.Port,
		mode:   cfg.Mode,

		db:      cfg.DB,
		storage: cfg.Storage,

		hub:      cfg.Hub,
		wsConfig: cfg.WSConfig,

		jwtMgr: cfg.JWTManager,

		minioCfg:  cfg.MinIO,
		stripeCfg: cfg.Stripe,
		siteCfg:   cfg.Site,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database client is required")
	}
	if srv.hub == nil {
		return errors.New("hub is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if srv.storage == nil {
		return errors.New("object storage client is required")
	}

	return nil
}
