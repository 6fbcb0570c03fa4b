package upload

import "io"

type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UploadOutput struct {
	URL        string
	ObjectName string
	Size       int64
}
