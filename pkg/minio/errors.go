package minio

import "errors"

var (
	// ErrEndpointRequired is returned when no endpoint is configured.
	ErrEndpointRequired = errors.New("minio: endpoint is required")

	// ErrCredentialsRequired is returned when access or secret key is missing.
	ErrCredentialsRequired = errors.New("minio: access key and secret key are required")

	// ErrNotConnected is returned when an operation runs before Connect.
	ErrNotConnected = errors.New("minio: not connected")

	// ErrInvalidUploadRequest is returned when an upload request is incomplete.
	ErrInvalidUploadRequest = errors.New("minio: invalid upload request")
)
