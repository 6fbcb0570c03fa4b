package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"sitekit-api/internal/model"
	"sitekit-api/internal/upload"
	pkgMinio "sitekit-api/pkg/minio"
)

// maxUploadSize caps a single asset at 10 MiB.
const maxUploadSize = 10 << 20

var allowedContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"image/svg+xml":   {},
	"application/pdf": {},
}

func (uc *usecase) Upload(ctx context.Context, sc model.Scope, ip upload.UploadInput) (upload.UploadOutput, error) {
	if ip.Reader == nil || ip.FileName == "" {
		return upload.UploadOutput{}, upload.ErrMissingFile
	}
	if ip.Size <= 0 || ip.Size > maxUploadSize {
		return upload.UploadOutput{}, upload.ErrFileTooLarge
	}
	if _, ok := allowedContentTypes[ip.ContentType]; !ok {
		return upload.UploadOutput{}, upload.ErrUnsupportedType
	}

	ext := strings.ToLower(filepath.Ext(ip.FileName))
	objectName := fmt.Sprintf("%s/%s%s", sc.SiteKey, uuid.NewString(), ext)

	info, err := uc.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:   uc.cfg.Bucket,
		ObjectName:   objectName,
		OriginalName: ip.FileName,
		Reader:       ip.Reader,
		Size:         ip.Size,
		ContentType:  ip.ContentType,
		Metadata: map[string]string{
			"site-key": sc.SiteKey,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.upload.usecase.Upload: %v", err)
		return upload.UploadOutput{}, upload.ErrStorageUnavailable
	}

	return upload.UploadOutput{
		URL:        uc.publicURL(objectName),
		ObjectName: info.ObjectName,
		Size:       info.Size,
	}, nil
}

func (uc *usecase) publicURL(objectName string) string {
	base := strings.TrimRight(uc.cfg.PublicURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, uc.cfg.Bucket, objectName)
}
