package upload

import "errors"

var (
	ErrMissingFile        = errors.New("missing file")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedType    = errors.New("unsupported content type")
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
