package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/store"
	"github.com/MKhiriev/go-config-reader/models"
)

type configServerService struct {
	repository store.ConfigRepository

	logger *logger.Logger
}

// NewConfigServerService returns a [ConfigServerService] serving repository.
func NewConfigServerService(repository store.ConfigRepository, logger *logger.Logger) ConfigServerService {
	return &configServerService{repository: repository, logger: logger}
}

func (s *configServerService) Environment(ctx context.Context, application, profile, label string) (models.Environment, error) {
	if strings.TrimSpace(application) == "" || strings.TrimSpace(profile) == "" {
		return models.Environment{}, fmt.Errorf("%w: application and profile are required", ErrInvalidDataProvided)
	}

	return s.repository.FindEnvironment(ctx, application, profile, label)
}

func (s *configServerService) Resource(ctx context.Context, application, profile, label, name string) (io.ReadCloser, error) {
	if strings.TrimSpace(application) == "" || strings.TrimSpace(profile) == "" || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: application, profile and resource name are required", ErrInvalidDataProvided)
	}

	return s.repository.FindResource(ctx, application, profile, label, name)
}
