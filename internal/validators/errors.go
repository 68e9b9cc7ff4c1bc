package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyName         = errors.New("document name is required")
	ErrEmptyContent      = errors.New("document content is required")
	ErrInvalidType       = errors.New("invalid document type")
	ErrInvalidDocumentID = errors.New("invalid document id")
)
