// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Name) == "" {
		return fmt.Errorf("%w: application name is empty", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	return validateSearchLocations(cfg.Storage.Native.SearchLocations)
}

func (cfg *ReaderConfig) validate() error {
	if strings.TrimSpace(cfg.App.Name) == "" {
		return fmt.Errorf("%w: application name is empty", ErrInvalidAppConfigs)
	}

	if len(cfg.Paths) == 0 {
		return fmt.Errorf("%w: no paths to read", ErrInvalidReaderConfigs)
	}

	return validateSearchLocations(cfg.Storage.Native.SearchLocations)
}

func validateSearchLocations(locations []string) error {
	for i, loc := range locations {
		if strings.TrimSpace(loc) == "" {
			return fmt.Errorf("%w: search location #%d is empty", ErrInvalidStorageConfigs, i)
		}
	}
	return nil
}
