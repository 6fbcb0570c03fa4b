package usecase

import (
	"sitekit-api/config"
	"sitekit-api/internal/upload"
	pkgLog "sitekit-api/pkg/log"
	pkgMinio "sitekit-api/pkg/minio"
)

type usecase struct {
	l       pkgLog.Logger
	storage pkgMinio.MinIO
	cfg     config.MinIOConfig
}

func New(l pkgLog.Logger, storage pkgMinio.MinIO, cfg config.MinIOConfig) upload.UseCase {
	return &usecase{
		l:       l,
		storage: storage,
		cfg:     cfg,
	}
}
