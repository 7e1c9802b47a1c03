package store

import "errors"

// Sentinel errors returned by the native repository. Callers should use
// [errors.Is] to match against these values. Missing resources are reported
// with [models.ErrNoSuchResource].
var (
	// ErrNoSearchLocations is returned when the repository is constructed
	// without any directory to search.
	ErrNoSearchLocations = errors.New("no search locations configured")

	// ErrInvalidSearchLocation is returned when a configured search location
	// does not exist or is not a directory.
	ErrInvalidSearchLocation = errors.New("invalid search location")

	// ErrUnsafeName is wrapped together with models.ErrNoSuchResource when a
	// resource name or label would escape its search location.
	ErrUnsafeName = errors.New("name escapes search location")

	// ErrParsingPropertySource is returned when a property file exists but
	// cannot be decoded.
	ErrParsingPropertySource = errors.New("failed to parse property source")
)
