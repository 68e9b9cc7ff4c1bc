package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/MKhiriev/lexsight/migrations"
)

// DB wraps a *sql.DB together with the dialect-specific pieces every
// repository needs: a squirrel statement builder with the right placeholder
// format, an error classificator, an id generator and a clock.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	ids                IDGenerator
	now                func() time.Time
	logger             *logger.Logger
}

// NewConnectDB opens the database selected by cfg.DSN:
//   - "postgres://" and "postgresql://" connect through pgx;
//   - "sqlite://<path>", "file:..." and ":memory:" open SQLite.
//
// Any other scheme yields [ErrUnsupportedDSN].
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dsn := cfg.DSN; {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, sqliteScheme):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, sqliteScheme), log)
	case strings.HasPrefix(dsn, "file:"), dsn == sqliteInMemory:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		log.Error().Str("func", "NewConnectDB").Msg("unsupported database dsn")
		return nil, ErrUnsupportedDSN
	}
}

// newDB assembles a DB for an open connection.
func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		ids:                utils.NewUUIDGenerator(),
		now:                func() time.Time { return time.Now().UTC() },
		logger:             log,
	}
}

// Dialect returns the migration dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("error migrating database")
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("database migrated")
	return nil
}

// isRetryable reports whether the classificator considers err transient.
func (db *DB) isRetryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// isUniqueViolation reports whether err is a unique constraint violation.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
