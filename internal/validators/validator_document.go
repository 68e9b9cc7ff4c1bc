package validators

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/lexsight/models"
)

const (
	FieldName       = "name"
	FieldContent    = "content"
	FieldType       = "type"
	FieldDocumentID = "document_id"
	FieldEmail      = "email"
	FieldPassword   = "password"
)

// DocumentID is a caller-supplied document identifier awaiting validation.
type DocumentID string

// Credentials is an email and password pair awaiting validation.
type Credentials struct {
	Email    string
	Password string
}

// DocumentValidator checks document payloads, document identifiers and
// sign-in credentials.
type DocumentValidator struct{}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewDocument:
		return v.validateNewDocument(ctx, value, fields...)
	case *models.NewDocument:
		return v.validateNewDocument(ctx, *value, fields...)

	case DocumentID:
		return v.validateDocumentID(value)

	case Credentials:
		return v.validateCredentials(value, fields...)
	case *Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNewDocument expects the type to be defaulted already; an empty
// type is rejected here.
func (v *DocumentValidator) validateNewDocument(ctx context.Context, doc models.NewDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldContent, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(doc.Name) == "" {
				return ErrEmptyName
			}
		case FieldContent:
			if strings.TrimSpace(doc.Content) == "" {
				return ErrEmptyContent
			}
		case FieldType:
			if !doc.Type.Valid() {
				return ErrInvalidType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateDocumentID(id DocumentID) error {
	if err := uuid.Validate(string(id)); err != nil {
		return ErrInvalidDocumentID
	}
	return nil
}

func (v *DocumentValidator) validateCredentials(c Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(c.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !strings.Contains(email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
