package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/MKhiriev/lexsight/internal/validators"
	"github.com/MKhiriev/lexsight/models"
)

// DocumentValidationService checks caller input before it reaches the
// wrapped DocumentService. Malformed ids are reported exactly like missing
// documents.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) List(ctx context.Context) ([]models.Document, error) {
	return v.inner.List(ctx)
}

// Create defaults an empty type to contract, then requires a name, content
// and a known type. Anonymous callers are rejected before validation.
func (v *DocumentValidationService) Create(ctx context.Context, doc models.NewDocument) (string, error) {
	if _, ok := utils.SessionUserFromContext(ctx); !ok {
		return "", ErrMustBeLoggedInToAdd
	}

	if doc.Type == "" {
		doc.Type = models.DocumentTypeContract
	}

	if err := v.validator.Validate(ctx, doc); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, doc)
}

func (v *DocumentValidationService) Get(ctx context.Context, id string) (models.Document, error) {
	if _, ok := utils.SessionUserFromContext(ctx); !ok {
		return models.Document{}, ErrMustBeLoggedIn
	}

	if err := v.validator.Validate(ctx, validators.DocumentID(id)); err != nil {
		return models.Document{}, ErrDocumentNotFound
	}

	return v.inner.Get(ctx, id)
}

func (v *DocumentValidationService) Delete(ctx context.Context, id string) error {
	if _, ok := utils.SessionUserFromContext(ctx); !ok {
		return ErrMustBeLoggedInToDelete
	}

	if err := v.validator.Validate(ctx, validators.DocumentID(id)); err != nil {
		return ErrCannotDeleteDocument
	}

	return v.inner.Delete(ctx, id)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}
