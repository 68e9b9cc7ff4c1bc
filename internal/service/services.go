package service

import (
	"github.com/MKhiriev/lexsight/internal/ai"
	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/store"
	"github.com/MKhiriev/lexsight/models"
)

// Services groups the business services consumed by the transport layer.
type Services struct {
	AuthService       AuthService
	DocumentService   DocumentService
	AnalysisService   AnalysisService
	ExtractionService ExtractionService
	AppInfoService    AppInfoService
}

// NewServices wires every service. The AI backend is resolved by the caller
// once at startup and passed in explicitly.
func NewServices(
	storages *store.Storages,
	extraction ExtractionService,
	backend ai.Backend,
	buildInfo models.AppBuildInfo,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	documents := NewDocumentValidationService().Wrap(
		NewDocumentService(storages.DocumentRepository, logger),
	)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		DocumentService:   documents,
		AnalysisService:   NewAnalysisService(backend, logger),
		ExtractionService: extraction,
		AppInfoService:    NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
