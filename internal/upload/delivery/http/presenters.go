package http

import "sitekit-api/internal/upload"

type uploadResp struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	Size       int64  `json:"size"`
}

func newUploadResp(out upload.UploadOutput) uploadResp {
	return uploadResp{
		URL:        out.URL,
		ObjectName: out.ObjectName,
		Size:       out.Size,
	}
}
