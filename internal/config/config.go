// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings.
	App App `envPrefix:"APP_"`

	// Reader holds settings of the content reader itself.
	Reader Reader `envPrefix:"READER_"`

	// Adapter holds the address of a remote configuration server. When it is
	// empty, configserver: paths are served by the native repository.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds settings of the native, filesystem-backed configuration
	// repository.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application identity settings.
type App struct {
	// Name is the application name used for every configuration server
	// lookup (resources and environments).
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the version string reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Reader holds settings of the content reader.
type Reader struct {
	// RunAs is the identity the process runs as. It is quoted in the
	// remediation attached to permission problems. Defaults to the current
	// OS user.
	// Env: READER_RUN_AS
	RunAs string `env:"RUN_AS"`

	// LocalCharset pins the encoding used to decode local files (an IANA
	// name such as "UTF-8" or "ISO-8859-1"). Empty means the host default
	// derived from the locale environment.
	// Env: READER_LOCAL_CHARSET
	LocalCharset string `env:"LOCAL_CHARSET"`
}

// Adapter holds settings of the remote configuration server client.
type Adapter struct {
	// HTTPAddress is the base URL of the configuration server
	// (e.g. "http://config:8888" or "config:8888").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request to the configuration server.
	// Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the read and write timeout of the HTTP server.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of storage backends.
type Storage struct {
	// Native holds the filesystem-backed configuration repository settings.
	Native Native `envPrefix:"NATIVE_"`
}

// Native holds settings of the filesystem-backed configuration repository.
type Native struct {
	// SearchLocations are directories searched, in order, for resources and
	// property files.
	// Env: STORAGE_NATIVE_SEARCH_LOCATIONS (comma separated)
	SearchLocations []string `env:"SEARCH_LOCATIONS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
