// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const minBcryptCost = 10

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the package sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: negative timeout or upload size", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database dsn", ErrInvalidStorageConfigs)
	}

	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	if cfg.App.BcryptCost < minBcryptCost {
		return fmt.Errorf("%w: bcrypt cost below %d", ErrInvalidAppConfigs, minBcryptCost)
	}
	if cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: non-positive session duration", ErrInvalidAppConfigs)
	}

	if len(cfg.OCR.Languages) == 0 || cfg.OCR.FallbackLanguage == "" || cfg.OCR.Parallelism < 1 {
		return fmt.Errorf("%w: languages, fallback and parallelism are required", ErrInvalidOCRConfigs)
	}

	return nil
}

// validate checks the merged [ClientConfig].
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: server address is required and timeout must not be negative", ErrInvalidClientConfigs)
	}
	if cfg.Session.CookieFile == "" {
		return fmt.Errorf("%w: empty cookie file", ErrInvalidClientConfigs)
	}

	return nil
}
