package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/service"
	"github.com/MKhiriev/go-config-reader/internal/store"
	"github.com/MKhiriev/go-config-reader/models"
)

// errorStatuses is checked in order; the first matching target wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{models.ErrNoSuchResource, http.StatusNotFound},

	{service.ErrNoConfigServer, http.StatusServiceUnavailable},
	{store.ErrParsingPropertySource, http.StatusInternalServerError},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusRequestTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Client errors carry
// the error text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
