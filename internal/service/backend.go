package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-reader/internal/adapter"
	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/reader"
	"github.com/MKhiriev/go-config-reader/internal/store"
	"github.com/MKhiriev/go-config-reader/models"
)

// Backend holds the collaborators that serve configserver: paths.
type Backend struct {
	Resources    reader.ResourceRepository
	Environments reader.EnvironmentRepository

	// Native is the filesystem repository, nil unless search locations are
	// configured.
	Native store.ConfigRepository
}

// NewBackend selects the configuration server used for configserver: paths:
// the remote server when adapterCfg.HTTPAddress is set, otherwise the native
// repository. Without either, configserver: paths fail with
// [ErrNoConfigServer].
func NewBackend(adapterCfg config.Adapter, storageCfg config.Storage, logger *logger.Logger) (*Backend, error) {
	backend := &Backend{}

	if len(storageCfg.Native.SearchLocations) > 0 {
		native, err := store.NewNativeRepository(storageCfg.Native, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating native repository: %w", err)
		}
		backend.Native = native
	}

	switch {
	case adapterCfg.HTTPAddress != "":
		remote, err := adapter.NewHTTPConfigServerAdapter(adapterCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating config server adapter: %w", err)
		}
		backend.Resources, backend.Environments = remote, remote
		logger.Info().Str("address", adapterCfg.HTTPAddress).Msg("using remote config server")
	case backend.Native != nil:
		backend.Resources, backend.Environments = backend.Native, backend.Native
		logger.Info().Strs("search_locations", backend.Native.SearchLocations()).Msg("using native config repository")
	default:
		backend.Resources, backend.Environments = noConfigServer{}, noConfigServer{}
		logger.Warn().Msg("no config server configured, configserver: paths will fail")
	}

	return backend, nil
}

// noConfigServer stands in when neither a remote server nor a native
// repository is configured.
type noConfigServer struct{}

func (noConfigServer) FindResource(context.Context, string, string, string, string) (io.ReadCloser, error) {
	return nil, ErrNoConfigServer
}

func (noConfigServer) FindEnvironment(context.Context, string, string, string) (models.Environment, error) {
	return models.Environment{}, ErrNoConfigServer
}
