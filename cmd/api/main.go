package main

import (
	"context"
	"fmt"

	"sitekit-api/config"
	configMinio "sitekit-api/config/minio"
	configPostgre "sitekit-api/config/postgre"
	"sitekit-api/internal/httpserver"
	"sitekit-api/internal/hub"
	"sitekit-api/pkg/discord"
	"sitekit-api/pkg/log"
	"sitekit-api/pkg/scope"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()
	logger.Infof(ctx, "Starting sitekit-api (%s)", cfg.Environment.Name)

	// Discord webhook is optional; the recovery middleware degrades to
	// log-only when it is absent.
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, &discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not initialized: %v", err)
		} else {
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Postgres: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, db)
	logger.Info(ctx, "Postgres client initialized")

	storage, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect(ctx)
	logger.Info(ctx, "MinIO client initialized")

	jwtManager := scope.New(cfg.JWT.SecretKey)
	logger.Info(ctx, "JWT manager initialized")

	notificationHub := hub.New(logger)
	logger.Info(ctx, "Notification hub initialized")

	srv, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		DB:      db,
		Storage: storage,

		Hub:      notificationHub,
		WSConfig: cfg.WebSocket,

		JWTManager: jwtManager,

		MinIO:  cfg.MinIO,
		Stripe: cfg.Stripe,
		Site:   cfg.Site,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
	}
}
