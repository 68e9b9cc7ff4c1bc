package store

import "github.com/MKhiriev/lexsight/internal/logger"

// Storages groups every repository backed by a single database connection.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	DocumentRepository DocumentRepository
}

// NewStorages constructs all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
	}
}
