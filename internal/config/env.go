// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the `env` and `envPrefix`
// tags of [StructuredConfig]. Search locations given as a comma separated
// list are trimmed and empty entries dropped, the same way the
// -search-locations flag is read.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if locations := cfg.Storage.Native.SearchLocations; locations != nil {
		cfg.Storage.Native.SearchLocations = splitList(strings.Join(locations, ","))
	}

	return nil
}
