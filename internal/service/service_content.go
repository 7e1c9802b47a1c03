package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/problem"
	"github.com/MKhiriev/go-config-reader/internal/reader"
	"github.com/MKhiriev/go-config-reader/models"
)

type contentService struct {
	reader reader.ContentReader

	logger *logger.Logger
}

// NewContentService returns a [ContentService] backed by r.
func NewContentService(r reader.ContentReader, logger *logger.Logger) ContentService {
	return &contentService{reader: r, logger: logger}
}

func (s *contentService) Contents(ctx context.Context, path string) (string, []models.Problem, error) {
	set := problem.NewSet()

	content, ok := s.reader.Contents(ctx, set, path)
	if !ok {
		return "", set.Problems(), nil
	}

	return content, nil, nil
}

func (s *contentService) ReadAll(ctx context.Context, req models.ContentsRequest) (models.ContentsReport, error) {
	set := problem.NewSet()
	report := models.ContentsReport{
		Contents: make(map[string]string, len(req.Paths)),
	}

	for _, path := range req.Paths {
		if err := ctx.Err(); err != nil {
			return models.ContentsReport{}, fmt.Errorf("reading contents interrupted: %w", err)
		}

		if content, ok := s.reader.Contents(ctx, set, path); ok {
			report.Contents[path] = content
		}
	}

	report.Problems = set.Problems()

	s.logger.Debug().
		Int("paths", len(req.Paths)).
		Int("resolved", len(report.Contents)).
		Int("problems", len(report.Problems)).
		Msg("contents batch resolved")

	return report, nil
}
