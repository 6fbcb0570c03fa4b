package postgre

import (
	"github.com/uptrace/bun"

	"sitekit-api/internal/appointment/repository"
	pkgLog "sitekit-api/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *bun.DB
}

func New(l pkgLog.Logger, db *bun.DB) repository.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
