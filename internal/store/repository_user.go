package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles credential user creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// store-assigned fields (ID, CreatedAt, UpdatedAt) populated.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists];
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	user.ID = r.db.ids.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Bool("retryable", r.db.isRetryable(err)).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByID retrieves a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

// FindUserByEmail retrieves a user by exact email match.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

// findUser runs a single-row user lookup.
//
// Error handling:
//   - no row → [ErrNoUserWasFound];
//   - any other failure → wrapped [ErrExecutingQuery].
func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user          models.User
		emailVerified sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Image,
		&user.Password,
		&emailVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Bool("retryable", r.db.isRetryable(err)).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if emailVerified.Valid {
		user.EmailVerified = &emailVerified.Time
	}

	return user, nil
}
