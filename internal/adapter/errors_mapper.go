package adapter

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-config-reader/models"
	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of an error response body is quoted.
const maxErrorBody = 4 << 10

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), string(resp.Body()))
}

// mapRawHTTPError maps an unparsed (streamed) response. The raw body is
// drained and closed when the status is not a success.
func mapRawHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body []byte
	if raw := resp.RawBody(); raw != nil {
		body, _ = io.ReadAll(io.LimitReader(raw, maxErrorBody))
		_ = raw.Close()
	}

	return mapStatus(resp.StatusCode(), string(body))
}

func mapStatus(status int, body string) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body = strings.TrimSpace(body)

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessDenied, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", models.ErrNoSuchResource, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, body)
	}
}
