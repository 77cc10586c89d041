package uploads

import "errors"

var (
	// ErrUnsupportedFileType is returned when the uploaded file's extension is
	// not on the allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrInvalidInput is returned for uploads missing a file name or body.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a storage key does not resolve to one of the
	// caller's uploads.
	ErrNotFound = errors.New("upload not found")
)
