package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application identity settings
	// (for example, an empty application name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidReaderConfigs indicates invalid reader settings
	// (for example, no paths to read).
	ErrInvalidReaderConfigs = errors.New("invalid reader configuration")
	// ErrInvalidStorageConfigs indicates invalid native repository settings
	// (for example, an empty search location).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
