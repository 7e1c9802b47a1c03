package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-config-reader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContentService resolves configuration paths on behalf of the transport
// layer.
type ContentService interface {
	// Contents resolves a single path. On failure content is empty and
	// problems holds the single problem describing it.
	Contents(ctx context.Context, path string) (content string, problems []models.Problem, err error)

	// ReadAll resolves every path of req in order against one shared
	// problem set.
	ReadAll(ctx context.Context, req models.ContentsRequest) (models.ContentsReport, error)
}

// ConfigServerService serves the embedded configuration server API.
type ConfigServerService interface {
	Environment(ctx context.Context, application, profile, label string) (models.Environment, error)
	Resource(ctx context.Context, application, profile, label, name string) (io.ReadCloser, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContentServiceWrapper defines middleware composition for ContentService.
// Implementations wrap an existing ContentService to add behavior such as
// validation.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService
}
