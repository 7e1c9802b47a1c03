package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-config-reader/models"
)

type ContentsValidator struct {
}

func NewContentsValidator() Validator {
	return &ContentsValidator{}
}

func (v *ContentsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validatePath(ctx, value, fields...)

	case models.Path:
		return v.validatePath(ctx, value.String(), fields...)
	case *models.Path:
		return v.validatePath(ctx, value.String(), fields...)

	case models.ContentsRequest:
		return v.validateContentsRequest(ctx, value, fields...)
	case *models.ContentsRequest:
		return v.validateContentsRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentsValidator) validatePath(ctx context.Context, raw string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if strings.TrimSpace(raw) == "" {
				return ErrEmptyPath
			}
			if strings.ContainsFunc(raw, unicode.IsControl) {
				return ErrInvalidPathChars
			}
			if path := models.ParsePath(raw); path.Kind == models.RemotePath && strings.TrimSpace(path.Value) == "" {
				return ErrEmptyResourceName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentsValidator) validateContentsRequest(ctx context.Context, request models.ContentsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPaths}
	}

	for _, f := range fields {
		switch f {
		case FieldPaths:
			if len(request.Paths) == 0 {
				return ErrEmptyPaths
			}
			if len(request.Paths) > MaxPathsPerRequest {
				return fmt.Errorf("%w: %d > %d", ErrTooManyPaths, len(request.Paths), MaxPathsPerRequest)
			}
			for i, path := range request.Paths {
				if err := v.validatePath(ctx, path, FieldPath); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
