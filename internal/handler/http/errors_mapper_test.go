package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-config-reader/internal/service"
	"github.com/MKhiriev/go-config-reader/internal/store"
	"github.com/MKhiriev/go-config-reader/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid body", ErrInvalidRequestBody, http.StatusBadRequest},
		{"invalid data", fmt.Errorf("wrapped: %w", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"no such resource", fmt.Errorf("%w: app.yml", models.ErrNoSuchResource), http.StatusNotFound},
		{"no config server", service.ErrNoConfigServer, http.StatusServiceUnavailable},
		{"broken property source", store.ErrParsingPropertySource, http.StatusInternalServerError},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"canceled", context.Canceled, http.StatusRequestTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesServerErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret detail"), "failed")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestWriteError_ExposesClientErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("%w: path contains NUL", service.ErrInvalidDataProvided)
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), err, "failed")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "path contains NUL")
}
