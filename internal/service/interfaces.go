package service

import (
	"context"

	"github.com/MKhiriev/lexsight/models"
)

// AuthService manages credential users and their login sessions.
type AuthService interface {
	CreateUserWithPassword(ctx context.Context, email, password, name string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// CreateSession returns the stored session and the raw token for the
	// cookie. The raw token is never persisted.
	CreateSession(ctx context.Context, userID string) (models.Session, string, error)
	// GetSession resolves a raw token. It returns nil without error for every
	// token that does not identify a live session.
	GetSession(ctx context.Context, token string) (*models.SessionUser, error)
	DeleteSession(ctx context.Context, token string) error
	// PurgeExpiredSessions deletes every expired session and reports how
	// many were removed.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// DocumentService manages the documents of the user carried by ctx.
type DocumentService interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, doc models.NewDocument) (string, error)
	Get(ctx context.Context, id string) (models.Document, error)
	Delete(ctx context.Context, id string) error
}

// DocumentServiceWrapper decorates a DocumentService with additional
// behavior such as validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}

// AnalysisService runs the AI operations over legal text.
type AnalysisService interface {
	SummarizeClause(ctx context.Context, clauseText string) (string, error)
	AnalyzeContractRisk(ctx context.Context, contractText string) (string, error)
	// Enabled reports whether a generative backend is configured.
	Enabled() bool
}

// ExtractionService turns uploaded files into plain text.
type ExtractionService interface {
	Extract(ctx context.Context, data []byte, mimeType, fileName string) (models.Extraction, error)
}

// AppInfoService reports build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
