package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/config"
	"sitekit-api/internal/model"
	"sitekit-api/internal/upload"
	pkgLog "sitekit-api/pkg/log"
	pkgMinio "sitekit-api/pkg/minio"
)

type fakeStorage struct {
	lastReq *pkgMinio.UploadRequest
	err     error
}

func (f *fakeStorage) Connect(context.Context) error              { return nil }
func (f *fakeStorage) HealthCheck(context.Context) error          { return nil }
func (f *fakeStorage) Close() error                               { return nil }
func (f *fakeStorage) EnsureBucket(context.Context, string) error { return nil }

func (f *fakeStorage) UploadFile(_ context.Context, req *pkgMinio.UploadRequest) (*pkgMinio.FileInfo, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &pkgMinio.FileInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       req.Size,
	}, nil
}

func newTestUsecase(storage *fakeStorage) upload.UseCase {
	return New(pkgLog.NewNoop(), storage, config.MinIOConfig{
		Bucket:    "assets",
		PublicURL: "https://cdn.example.com/",
	})
}

func TestUpload(t *testing.T) {
	storage := &fakeStorage{}
	uc := newTestUsecase(storage)

	out, err := uc.Upload(context.Background(), model.Scope{SiteKey: "acme"}, upload.UploadInput{
		FileName:    "Hero.PNG",
		ContentType: "image/png",
		Size:        1024,
		Reader:      strings.NewReader("png bytes"),
	})
	require.NoError(t, err)

	require.NotNil(t, storage.lastReq)
	assert.Equal(t, "assets", storage.lastReq.BucketName)
	assert.True(t, strings.HasPrefix(storage.lastReq.ObjectName, "acme/"), "object name should be tenant-prefixed")
	assert.True(t, strings.HasSuffix(storage.lastReq.ObjectName, ".png"), "extension should be preserved lowercase")

	assert.Equal(t, storage.lastReq.ObjectName, out.ObjectName)
	assert.Equal(t, "https://cdn.example.com/assets/"+out.ObjectName, out.URL)
}

func TestUploadValidation(t *testing.T) {
	uc := newTestUsecase(&fakeStorage{})

	_, err := uc.Upload(context.Background(), model.Scope{SiteKey: "acme"}, upload.UploadInput{
		ContentType: "image/png",
		Size:        10,
	})
	assert.ErrorIs(t, err, upload.ErrMissingFile)

	_, err = uc.Upload(context.Background(), model.Scope{SiteKey: "acme"}, upload.UploadInput{
		FileName:    "huge.png",
		ContentType: "image/png",
		Size:        maxUploadSize + 1,
		Reader:      strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, upload.ErrFileTooLarge)

	_, err = uc.Upload(context.Background(), model.Scope{SiteKey: "acme"}, upload.UploadInput{
		FileName:    "app.exe",
		ContentType: "application/octet-stream",
		Size:        10,
		Reader:      strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, upload.ErrUnsupportedType)
}
