package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
// Rows are keyed by the SHA-256 hash of the session token; raw tokens are
// never passed to this layer.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.db.now()
	}

	query, args, err := buildInsertSessionQuery(r.db.builder, session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Str("user_id", session.UserID).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error inserting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return session, nil
}

func (r *sessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(r.db.builder, tokenHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByTokenHash").Msg("error building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.TokenHash,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByTokenHash").Msg("error finding session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(r.db.builder, tokenHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByTokenHash").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByTokenHash").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
