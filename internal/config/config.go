// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// Environment names accepted by [App.Env].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultSessionDuration  = 7 * 24 * time.Hour
	DefaultBcryptCost       = 10
	DefaultMaxUploadSize    = 20 << 20
	DefaultAILocation       = "us-central1"
	DefaultAIModel          = "gemini-1.5-flash"
	DefaultOCRLanguages     = "eng+hin+mar+tam+kan+tel"
	DefaultOCRFallback      = "eng"
	DefaultOCRParallelism   = 2
	defaultLanguageSplitter = "+"
)

// StructuredConfig is the top-level configuration container for the
// LexSight server. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: environment, version, session
	// lifetime and password hashing cost.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout and upload settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// AI holds the generative AI backend settings. An empty ProjectID
	// disables AI features.
	AI AI `envPrefix:"AI_"`

	// OCR holds the optical character recognition settings.
	OCR OCR `envPrefix:"OCR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the deployment environment: "development" or "production".
	// Session cookies are marked Secure only in production.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level name (e.g. "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SessionDuration is how long a login session remains valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionCleanupInterval is the period of the optional expired-session
	// sweep. Zero or a negative value leaves it off; expired sessions are
	// then only removed when they are read.
	// Env: APP_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`

	// BcryptCost is the bcrypt work factor used for password hashing.
	// Must be at least 10.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// IsProduction reports whether the application runs in production.
func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request. Zero disables the
	// bound, leaving long OCR and AI calls to their own limits.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WebDir is an optional directory with the built front-end pages served
	// behind the access gate.
	// Env: SERVER_WEB_DIR
	WebDir string `env:"WEB_DIR"`

	// MaxUploadSize is the largest accepted upload body in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the database. "postgres://" and
	// "postgresql://" DSNs use pgx; "sqlite://<path>" and "file:" DSNs use
	// SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// AI holds the Vertex AI generative backend configuration.
type AI struct {
	// ProjectID is the Google Cloud project hosting the model. Leaving it
	// empty disables AI features; the analysis endpoints then return
	// placeholder texts.
	// Env: AI_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// Location is the Vertex AI region.
	// Env: AI_LOCATION
	Location string `env:"LOCATION"`

	// Model is the generative model name.
	// Env: AI_MODEL
	Model string `env:"MODEL"`

	// CredentialsFile is an optional service-account key file. Application
	// default credentials are used when empty.
	// Env: AI_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// Enabled reports whether an AI backend is configured.
func (a AI) Enabled() bool {
	return a.ProjectID != ""
}

// OCR holds Tesseract settings.
type OCR struct {
	// Languages is the multi-language recognition profile.
	// Env: OCR_LANGUAGES (joined with "+", e.g. "eng+hin")
	Languages []string `env:"LANGUAGES" envSeparator:"+"`

	// FallbackLanguage is used for the single retry after a failed
	// multi-language recognition.
	// Env: OCR_FALLBACK_LANGUAGE
	FallbackLanguage string `env:"FALLBACK_LANGUAGE"`

	// TessdataPrefix points Tesseract at its trained data directory.
	// Env: OCR_TESSDATA_PREFIX
	TessdataPrefix string `env:"TESSDATA_PREFIX"`

	// Parallelism is the number of pages recognised concurrently within a
	// single request.
	// Env: OCR_PARALLELISM
	Parallelism int `env:"PARALLELISM"`
}

// splitLanguages parses a "+"-separated language profile.
func splitLanguages(profile string) []string {
	if profile == "" {
		return nil
	}

	var languages []string
	for _, lang := range strings.Split(profile, defaultLanguageSplitter) {
		if lang = strings.TrimSpace(lang); lang != "" {
			languages = append(languages, lang)
		}
	}

	return languages
}

// applyDefaults fills zero-valued fields with their defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.AI.Location == "" {
		cfg.AI.Location = DefaultAILocation
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultAIModel
	}
	if len(cfg.OCR.Languages) == 0 {
		cfg.OCR.Languages = splitLanguages(DefaultOCRLanguages)
	}
	if cfg.OCR.FallbackLanguage == "" {
		cfg.OCR.FallbackLanguage = DefaultOCRFallback
	}
	if cfg.OCR.Parallelism == 0 {
		cfg.OCR.Parallelism = DefaultOCRParallelism
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source providing a non-zero field wins):
//  1. Environment variables (a .env file in the working directory is loaded
//     first without overriding variables that are already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields still empty after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags().
		withJSON().
		build()
}
