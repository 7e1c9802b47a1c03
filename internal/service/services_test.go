package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/service"
	"github.com/MKhiriev/go-config-reader/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend_NothingConfigured(t *testing.T) {
	backend, err := service.NewBackend(config.Adapter{}, config.Storage{}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, backend.Native)

	_, err = backend.Resources.FindResource(context.Background(), "halyard", "", "", "app.yml")
	assert.ErrorIs(t, err, service.ErrNoConfigServer)
	_, err = backend.Environments.FindEnvironment(context.Background(), "halyard", "", "")
	assert.ErrorIs(t, err, service.ErrNoConfigServer)
}

func TestNewBackend_NativeOnly(t *testing.T) {
	root := newNativeDir(t)

	backend, err := service.NewBackend(config.Adapter{}, config.Storage{Native: config.Native{SearchLocations: []string{root}}}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, backend.Native)
	assert.Same(t, backend.Native, backend.Resources.(store.ConfigRepository))
}

func TestNewBackend_RemoteWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"halyard","propertySources":[{"name":"remote","source":{"foo":"remote"}}]}`))
	}))
	defer srv.Close()

	backend, err := service.NewBackend(
		config.Adapter{HTTPAddress: srv.URL},
		config.Storage{Native: config.Native{SearchLocations: []string{newNativeDir(t)}}},
		logger.Nop(),
	)
	require.NoError(t, err)
	require.NotNil(t, backend.Native)

	env, err := backend.Environments.FindEnvironment(context.Background(), "halyard", "", "")
	require.NoError(t, err)
	foo, _ := env.Property("foo")
	assert.Equal(t, "remote", foo)
}

func TestNewBackend_InvalidNativeLocation(t *testing.T) {
	_, err := service.NewBackend(config.Adapter{}, config.Storage{Native: config.Native{SearchLocations: []string{"/definitely/not/here"}}}, logger.Nop())

	assert.ErrorIs(t, err, store.ErrInvalidSearchLocation)
}

func TestNewServices(t *testing.T) {
	cfg := config.StructuredConfig{
		App:     config.App{Name: "halyard", Version: "1.0.0"},
		Reader:  config.Reader{RunAs: "svc", LocalCharset: "UTF-8"},
		Storage: config.Storage{Native: config.Native{SearchLocations: []string{newNativeDir(t)}}},
	}

	services, err := service.NewServices(cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.ConfigServerService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	content, problems, err := services.ContentService.Contents(context.Background(), "configserver:app.properties")
	require.NoError(t, err)
	assert.Empty(t, problems)
	assert.Equal(t, "foo=bar\n", content)
}

func TestNewServices_WithoutNativeRepository(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Name: "halyard", Version: "1.0.0"}}

	services, err := service.NewServices(cfg, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, services.ConfigServerService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := service.NewServices(config.StructuredConfig{App: config.App{Name: "halyard"}}, logger.Nop())

	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}
