package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPath         = errors.New("path is required")
	ErrEmptyResourceName = errors.New("config server resource name is required")
	ErrInvalidPathChars  = errors.New("path contains control characters")
	ErrEmptyPaths        = errors.New("paths list cannot be empty")
	ErrTooManyPaths      = errors.New("too many paths in one request")
)
