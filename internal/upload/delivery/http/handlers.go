package http

import (
	"github.com/gin-gonic/gin"

	"sitekit-api/internal/upload"
	"sitekit-api/pkg/response"
	"sitekit-api/pkg/scope"
)

// Upload accepts a multipart file and stores it under the tenant's
// prefix in object storage.
func (h *Handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.l.Warnf(ctx, "internal.upload.delivery.http.Upload.FormFile: %v", err)
		response.ErrorWithMap(c, upload.ErrMissingFile, errorMapping, h.d)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "internal.upload.delivery.http.Upload.Open: %v", err)
		response.ErrorWithMap(c, upload.ErrMissingFile, errorMapping, h.d)
		return
	}
	defer file.Close()

	sc := scope.GetScopeFromContext(ctx)
	out, err := h.uc.Upload(ctx, sc, upload.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, newUploadResp(out))
}
