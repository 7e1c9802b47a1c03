// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the native, filesystem-backed configuration
// repository. It plays the role of an embedded configuration server: raw
// resources and property-file environments are served from a list of search
// locations on the local disk.
package store

import (
	"github.com/MKhiriev/go-config-reader/internal/reader"
)

// ConfigRepository serves resources and environments from local storage.
type ConfigRepository interface {
	reader.ResourceRepository
	reader.EnvironmentRepository

	// SearchLocations returns the absolute directories searched, in order.
	SearchLocations() []string
}
