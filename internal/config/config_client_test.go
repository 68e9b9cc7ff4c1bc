package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, err := GetClientConfig(ClientConfig{})

		require.NoError(t, err)
		assert.Equal(t, DefaultClientServerAddress, cfg.Adapter.HTTPAddress)
		assert.Equal(t, DefaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
		assert.Equal(t, "session.json", filepath.Base(cfg.Session.CookieFile))
		assert.Equal(t, "client.log", filepath.Base(cfg.Session.LogFile))
	})

	t.Run("env values", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("CLIENT_SERVER_ADDRESS", "https://lexsight.example.com")
		t.Setenv("CLIENT_REQUEST_TIMEOUT", "45s")
		t.Setenv("CLIENT_COOKIE_FILE", "/tmp/cookie.json")

		cfg, err := GetClientConfig(ClientConfig{})

		require.NoError(t, err)
		assert.Equal(t, "https://lexsight.example.com", cfg.Adapter.HTTPAddress)
		assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, "/tmp/cookie.json", cfg.Session.CookieFile)
	})

	t.Run("overrides win over env", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("CLIENT_SERVER_ADDRESS", "https://lexsight.example.com")

		cfg, err := GetClientConfig(ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://127.0.0.1:9000"}})

		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	})

	t.Run("invalid env duration", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("CLIENT_REQUEST_TIMEOUT", "soon")

		_, err := GetClientConfig(ClientConfig{})

		require.Error(t, err)
	})
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080"},
				Session: ClientSession{CookieFile: "session.json"},
			},
		},
		{name: "no address", cfg: ClientConfig{Session: ClientSession{CookieFile: "session.json"}}, wantErr: true},
		{
			name: "negative timeout",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: -time.Second},
				Session: ClientSession{CookieFile: "session.json"},
			},
			wantErr: true,
		},
		{name: "no cookie file", cfg: ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidClientConfigs)
				return
			}
			require.NoError(t, err)
		})
	}
}
