package service

import (
	"fmt"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/reader"
)

type Services struct {
	ContentService ContentService
	AppInfoService AppInfoService

	// ConfigServerService is nil when no native repository is configured.
	ConfigServerService ConfigServerService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	backend, err := NewBackend(cfg.Adapter, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	contentReader, err := reader.NewValidatingFileReader(backend.Resources, backend.Environments, cfg.App, cfg.Reader, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating content reader: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	services := &Services{
		ContentService: NewContentValidationService().Wrap(NewContentService(contentReader, logger)),
		AppInfoService: appInfoService,
	}
	if backend.Native != nil {
		services.ConfigServerService = NewConfigServerService(backend.Native, logger)
	}

	return services, nil
}
