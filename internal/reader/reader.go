// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reader

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/models"
	"golang.org/x/text/encoding"
)

// ValidatingFileReader is the [ContentReader] implementation. It dispatches
// local paths to the filesystem and configserver: paths to the injected
// repositories.
//
// A ValidatingFileReader holds no mutable state and may be used from several
// goroutines at once.
type ValidatingFileReader struct {
	resources    ResourceRepository
	environments EnvironmentRepository

	application string
	runAs       string
	charset     encoding.Encoding

	logger *logger.Logger
}

// NewValidatingFileReader constructs a reader.
//
// The local charset is taken from readerCfg.LocalCharset when set, otherwise
// from the host locale (see [HostCharset]). An unknown explicit charset is a
// configuration error.
func NewValidatingFileReader(
	resources ResourceRepository,
	environments EnvironmentRepository,
	appCfg config.App,
	readerCfg config.Reader,
	log *logger.Logger,
) (*ValidatingFileReader, error) {
	if resources == nil || environments == nil {
		return nil, ErrNilRepository
	}
	if log == nil {
		log = logger.Nop()
	}

	charset := HostCharset()
	if readerCfg.LocalCharset != "" {
		enc, err := LookupCharset(readerCfg.LocalCharset)
		if err != nil {
			return nil, fmt.Errorf("local charset: %w", err)
		}
		charset = enc
	}

	return &ValidatingFileReader{
		resources:    resources,
		environments: environments,
		application:  appCfg.Name,
		runAs:        readerCfg.RunAs,
		charset:      charset,
		logger:       log,
	}, nil
}

// Contents implements [ContentReader].
func (r *ValidatingFileReader) Contents(ctx context.Context, sink ProblemSink, path string) (string, bool) {
	content, problem := r.Read(ctx, models.ParsePath(path))
	if problem != nil {
		if sink != nil {
			sink.Add(*problem)
		}
		return "", false
	}

	return content, true
}

// Read implements [ContentReader].
func (r *ValidatingFileReader) Read(ctx context.Context, path models.Path) (string, *models.Problem) {
	r.logger.Debug().
		Str("path", path.String()).
		Str("kind", path.Kind.String()).
		Msg("resolving contents")

	var (
		content string
		problem *models.Problem
	)

	switch path.Kind {
	case models.LocalPath:
		content, problem = r.readLocal(path)
	case models.RemotePath:
		content, problem = r.readRemote(ctx, path)
	default:
		problem = r.newProblem("Failed to read path "+quote(path.String())+".",
			fmt.Errorf("%w: %s", ErrUnsupportedPathKind, path.Kind))
	}

	if problem != nil {
		r.logger.Warn().
			Str("path", path.String()).
			Str("severity", problem.Severity.String()).
			Str("remediation", problem.Remediation).
			Msg(problem.Message)
	}

	return content, problem
}
