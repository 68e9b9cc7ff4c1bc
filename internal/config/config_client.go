// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 2 * time.Minute
	defaultClientStateDir       = ".lexsight"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the LexSight server.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds a single request. OCR of large scans is slow, so
	// the default is generous.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientSession holds where the client keeps state between invocations.
type ClientSession struct {
	// CookieFile stores the session cookie.
	// Env: CLIENT_COOKIE_FILE
	CookieFile string `env:"COOKIE_FILE"`

	// LogFile receives client log entries.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	Session ClientSession `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the client configuration from a .env file and the
// environment, then fills in defaults. overrides (usually parsed from
// command-line flags) take precedence over both.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	if err := loadDotEnv(defaultDotEnvPath); err != nil {
		return nil, err
	}

	envCfg := new(ClientConfig)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := overrides
	if err := mergo.Merge(&cfg, envCfg); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, cfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientServerAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	stateDir := defaultClientStateDir
	if home, err := os.UserHomeDir(); err == nil {
		stateDir = filepath.Join(home, defaultClientStateDir)
	}
	if cfg.Session.CookieFile == "" {
		cfg.Session.CookieFile = filepath.Join(stateDir, "session.json")
	}
	if cfg.Session.LogFile == "" {
		cfg.Session.LogFile = filepath.Join(stateDir, "client.log")
	}
}
