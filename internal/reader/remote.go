package reader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-reader/internal/placeholder"
	"github.com/MKhiriev/go-config-reader/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func (r *ValidatingFileReader) readRemote(ctx context.Context, path models.Path) (string, *models.Problem) {
	content, err := r.fetchRemote(ctx, path.Value)
	if err != nil {
		if errors.Is(err, models.ErrNoSuchResource) {
			return "", r.newProblem("The resource "+quote(path.String())+" was not found in config server.", err)
		}
		return "", r.newProblem("Failed to retrieve resource "+quote(path.String())+" from config Server.", err)
	}

	return content, nil
}

// fetchRemote streams the named resource, fetches the default environment
// while the stream is open and resolves placeholders against it.
func (r *ValidatingFileReader) fetchRemote(ctx context.Context, name string) (string, error) {
	rc, err := r.resources.FindResource(ctx, r.application, "", "", name)
	if err != nil {
		return "", err
	}
	if rc == nil {
		return "", fmt.Errorf("%w: %s", models.ErrNoSuchResource, name)
	}
	defer rc.Close()

	env, err := r.environments.FindEnvironment(ctx, r.application, "", "")
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(transform.NewReader(rc, unicode.UTF8.NewDecoder()))
	if err != nil {
		return "", err
	}

	return placeholder.NewResolver(env).Resolve(string(data)), nil
}
