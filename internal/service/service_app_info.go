package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
)

// appInfoService reports the version of the running config reader.
type appInfoService struct {
	version string
}

// NewAppInfoService returns the [AppInfoService] for cfg. The version is
// trimmed; a blank one is rejected with [ErrVersionIsNotSpecified].
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("application", cfg.Name).
		Str("version", version).
		Msg("app info service created")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
