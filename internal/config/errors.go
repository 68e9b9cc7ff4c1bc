package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, unknown environment or weak bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOCRConfigs indicates invalid OCR settings
	// (for example, an empty language profile).
	ErrInvalidOCRConfigs = errors.New("invalid ocr configuration")
	// ErrInvalidClientConfigs indicates invalid command-line client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
