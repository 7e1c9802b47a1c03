package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-reader/internal/validators"
	"github.com/MKhiriev/go-config-reader/models"
)

type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService() ContentServiceWrapper {
	return &ContentValidationService{
		validator: validators.NewContentsValidator(),
	}
}

func (v *ContentValidationService) Contents(ctx context.Context, path string) (string, []models.Problem, error) {
	if err := v.validator.Validate(ctx, path); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Contents(ctx, path)
}

func (v *ContentValidationService) ReadAll(ctx context.Context, req models.ContentsRequest) (models.ContentsReport, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ContentsReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ReadAll(ctx, req)
}

func (v *ContentValidationService) Wrap(wrapped ContentService) ContentService {
	v.inner = wrapped
	return v
}
