package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-config-reader/internal/config"
	"github.com/MKhiriev/go-config-reader/internal/logger"
	"github.com/MKhiriev/go-config-reader/internal/utils"
	"github.com/MKhiriev/go-config-reader/models"
)

const (
	defaultProfile = "default"

	environmentPath          = "/{application}/{profile}"
	labelledEnvironmentPath  = "/{application}/{profile}/{label}"
	resourcePath             = "/{application}/{profile}/{label}/{name}"
	defaultLabelResourcePath = "/{application}/{profile}/{name}"
	useDefaultLabelParameter = "useDefaultLabel"
)

type httpConfigServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConfigServerAdapter constructs an HTTP/REST implementation of
// [ConfigServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPConfigServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ConfigServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpConfigServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FindEnvironment implements [ConfigServerAdapter]. It GETs
// /{application}/{profile}[/{label}] and decodes the environment JSON. Numbers
// are kept as json.Number so placeholders render them verbatim.
func (h *httpConfigServerAdapter) FindEnvironment(ctx context.Context, application, profile, label string) (models.Environment, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParams(map[string]string{
			"application": application,
			"profile":     profileOrDefault(profile),
		})

	path := environmentPath
	if label != "" {
		req.SetPathParam("label", label)
		path = labelledEnvironmentPath
	}

	resp, err := req.Get(path)
	if err != nil {
		return models.Environment{}, fmt.Errorf("environment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Environment{}, err
	}

	var env models.Environment
	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	if err = dec.Decode(&env); err != nil {
		return models.Environment{}, fmt.Errorf("decode environment: %w", err)
	}

	h.logger.Debug().
		Str("application", application).
		Str("profile", profile).
		Str("label", label).
		Int("property_sources", len(env.PropertySources)).
		Msg("environment fetched")

	return env, nil
}

// FindResource implements [ConfigServerAdapter]. It GETs
// /{application}/{profile}/{label}/{name}, or
// /{application}/{profile}/{name}?useDefaultLabel when label is empty, and
// returns the unparsed response body. The name may contain slashes.
func (h *httpConfigServerAdapter) FindResource(ctx context.Context, application, profile, label, name string) (io.ReadCloser, error) {
	req := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetPathParams(map[string]string{
			"application": application,
			"profile":     profileOrDefault(profile),
		}).
		SetRawPathParam("name", escapeResourceName(name))

	path := resourcePath
	if label != "" {
		req.SetPathParam("label", label)
	} else {
		req.SetQueryParam(useDefaultLabelParameter, "")
		path = defaultLabelResourcePath
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("resource request: %w", err)
	}
	if err = mapRawHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("application", application).
		Str("name", name).
		Msg("resource stream opened")

	return resp.RawBody(), nil
}

// escapeResourceName path-escapes every segment of name and keeps the
// slashes between them.
func escapeResourceName(name string) string {
	segments := strings.Split(strings.TrimLeft(name, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

func profileOrDefault(profile string) string {
	if profile == "" {
		return defaultProfile
	}
	return profile
}
