package config

import (
	"os"
	"os/user"
	"time"
)

const (
	// DefaultAppName is the application name used for configuration server
	// lookups when none is configured.
	DefaultAppName = "halyard"

	defaultServerRequestTimeout = 30 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: DefaultAppName,
		},
		Reader: Reader{
			RunAs: currentUser(),
		},
		Server: Server{
			RequestTimeout: defaultServerRequestTimeout,
		},
	}
}

// currentUser returns the name of the user the process runs as, falling back
// to $USER when the user database cannot be queried.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
