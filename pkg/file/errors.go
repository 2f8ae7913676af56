package file

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid storage configuration")
	ErrInvalidPath   = errors.New("invalid path")

	ErrFileNotFound = errors.New("file not found")
	ErrIsDirectory  = errors.New("path is a directory")
	ErrFileTooLarge = errors.New("file size exceeds maximum allowed size")

	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
	ErrFailedToReadFile        = errors.New("failed to read file")
	ErrFailedToStatPath        = errors.New("failed to stat path")
	ErrFailedToLoadConfig      = errors.New("failed to load AWS config")

	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
)
