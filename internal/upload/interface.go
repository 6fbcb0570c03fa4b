package upload

import (
	"context"

	"sitekit-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Upload stores the file under the tenant's prefix and returns the
	// public URL.
	Upload(ctx context.Context, sc model.Scope, ip UploadInput) (UploadOutput, error)
}
