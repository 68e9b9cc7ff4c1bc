package http

import (
	"net/http"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/service"
)

// Handler serves the HTTP API on top of the business services.
type Handler struct {
	services *service.Services

	// secureCookies marks the session cookie Secure (production only).
	secureCookies bool

	// maxUploadSize bounds the body of extraction uploads.
	maxUploadSize int64

	// pages serves the front-end behind the access gate.
	pages http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxUploadSize := cfg.Server.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = config.DefaultMaxUploadSize
	}

	return &Handler{
		services:      services,
		secureCookies: cfg.App.IsProduction(),
		maxUploadSize: maxUploadSize,
		pages:         newPageHandler(cfg.Server.WebDir),
		logger:        logger,
	}
}
