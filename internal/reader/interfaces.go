// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reader resolves logical configuration paths to their textual
// contents.
//
// A path is either a local filesystem path or a configserver: reference to a
// resource served by a Spring Cloud Config compatible server. Retrieval never
// fails hard: every failure is turned into a single FATAL [models.Problem]
// that is appended to a caller-supplied [ProblemSink] (or returned by
// [ValidatingFileReader.Read]).
package reader

import (
	"context"
	"io"

	"github.com/MKhiriev/go-config-reader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/reader_mock.go -package=mock

// ProblemSink collects problems produced during content retrieval.
// Implementations must be safe for use by the callers that share them.
type ProblemSink interface {
	// Add appends problem to the sink.
	Add(problem models.Problem)
}

// ResourceRepository locates raw resources held by a configuration server.
type ResourceRepository interface {
	// FindResource returns a stream over the named resource. Empty profile
	// and label select the server defaults. A missing resource is reported
	// with an error wrapping [models.ErrNoSuchResource]. The caller closes
	// the returned stream.
	FindResource(ctx context.Context, application, profile, label, name string) (io.ReadCloser, error)
}

// EnvironmentRepository fetches the property sources used to resolve
// placeholders inside remote resources.
type EnvironmentRepository interface {
	// FindEnvironment returns the environment of application for the given
	// profile and label. Empty profile and label select the server defaults.
	FindEnvironment(ctx context.Context, application, profile, label string) (models.Environment, error)
}

// ContentReader resolves paths to contents.
type ContentReader interface {
	// Contents resolves path and returns its text. On failure exactly one
	// problem is added to sink and ok is false.
	Contents(ctx context.Context, sink ProblemSink, path string) (content string, ok bool)

	// Read resolves an already parsed path. Exactly one of content or
	// problem is meaningful: problem is nil on success.
	Read(ctx context.Context, path models.Path) (content string, problem *models.Problem)
}
