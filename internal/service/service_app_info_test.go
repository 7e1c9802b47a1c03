package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := service.NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_BlankVersion_ReturnsError(t *testing.T) {
	for _, version := range []string{"", "   ", "\t\n"} {
		t.Run(version, func(t *testing.T) {
			svc, err := service.NewAppInfoService(config.App{Version: version}, logger.Nop())

			assert.Nil(t, svc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrVersionIsNotSpecified))
		})
	}
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := service.NewAppInfoService(config.App{Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_TrimsConfiguredVersion(t *testing.T) {
	svc, err := service.NewAppInfoService(config.App{Name: "halyard", Version: " 2.0.0\n"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", svc.GetAppVersion(context.Background()))
}
