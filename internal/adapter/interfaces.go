// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the Spring Cloud Config
// compatible configuration server protocol.
//
// The primary abstraction is [ConfigServerAdapter], which serves both
// collaborators of the content reader: raw resources and environments. The
// package ships an HTTP/REST implementation ([NewHTTPConfigServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [models.ErrNoSuchResource] for 404, [ErrAccessDenied] for 403).
package adapter

import (
	"github.com/MKhiriev/go-config-reader/internal/reader"
)

// ConfigServerAdapter talks to a remote configuration server. Implementations
// are responsible for request building, response decoding and mapping
// transport-level errors to the sentinel values defined in this package.
type ConfigServerAdapter interface {
	reader.ResourceRepository
	reader.EnvironmentRepository
}
