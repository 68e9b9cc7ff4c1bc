package store

import (
	"context"
	"time"

	"github.com/MKhiriev/lexsight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists credential users.
type UserRepository interface {
	// CreateUser stores a new user. The store assigns ID, CreatedAt and
	// UpdatedAt. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns [ErrNoUserWasFound] when no user has the id.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository persists login sessions keyed by token hash.
type SessionRepository interface {
	// CreateSession stores session. CreatedAt is assigned when zero.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	// FindSessionByTokenHash returns [ErrSessionNotFound] when no row matches.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error)
	// DeleteSessionByTokenHash removes the session; deleting a missing
	// session is not an error.
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error
	// DeleteExpiredSessions removes every session that expired before now
	// and reports how many rows were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// DocumentRepository persists user-owned documents. Every read and delete is
// scoped by the owner id.
type DocumentRepository interface {
	// CreateDocument stores doc. The store assigns ID and CreatedAt.
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	// ListDocumentsByUser returns the owner's documents, newest first.
	ListDocumentsByUser(ctx context.Context, userID string) ([]models.Document, error)
	// FindDocument returns [ErrDocumentNotFound] unless id exists and is
	// owned by userID.
	FindDocument(ctx context.Context, id, userID string) (models.Document, error)
	// DeleteDocument returns [ErrDocumentNotFound] unless a row with id and
	// userID was deleted.
	DeleteDocument(ctx context.Context, id, userID string) error
}

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
