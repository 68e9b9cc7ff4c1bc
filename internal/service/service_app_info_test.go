package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ReturnsAppInfoServiceInterface(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "2.5.1"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NotNil(t, svc)
	var _ AppInfoService = svc
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("9.9.9", "", ""), logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_FallsBackToBuildVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop())

	assert.Equal(t, "1.4.0", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_NothingConfigured(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1 := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	svc2 := NewAppInfoService(config.App{Version: "2.0.0"}, models.AppBuildInfo{}, logger.Nop())

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")
	svc := NewAppInfoService(config.App{}, info, logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "2026-10-01", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}
