package storage

import "errors"

var (
	ErrorNoSuchKey     = errors.New("no such key")
	ErrQuotaExceeded   = errors.New("storage quota exceeded")
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
