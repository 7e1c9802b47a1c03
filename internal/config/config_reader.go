package config

import (
	"fmt"
)

// ReaderConfig is the configuration view used by the command-line reader.
// It omits the HTTP server settings.
type ReaderConfig struct {
	// App contains application identity settings.
	App App
	// Reader contains content reader settings.
	Reader Reader
	// Adapter contains the remote configuration server settings.
	Adapter Adapter
	// Storage contains the native repository settings.
	Storage Storage
	// Paths are the positional command-line arguments.
	Paths []string
}

// GetReaderConfig builds and validates a reader-specific config view from the
// merged structured configuration.
//
// It loads the base config from all sources, maps only the fields relevant
// to the command-line reader, and validates the resulting [ReaderConfig].
func GetReaderConfig() (*ReaderConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	readerCfg := &ReaderConfig{
		App:     cfg.App,
		Reader:  cfg.Reader,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Paths:   Args(),
	}

	return readerCfg, readerCfg.validate()
}
