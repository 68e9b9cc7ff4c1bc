package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/migrations"
)

var fixedNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type sequenceIDs struct {
	ids  []string
	next int
}

func (s *sequenceIDs) Generate() string {
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return id
}

// newMockDB returns a postgres-flavoured DB over sqlmock with a fixed clock
// and predictable ids.
func newMockDB(t *testing.T, ids ...string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	if len(ids) == 0 {
		ids = []string{"0196a000-0000-7000-8000-000000000001"}
	}

	db := newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
	db.ids = &sequenceIDs{ids: ids}
	db.now = func() time.Time { return fixedNow }

	return db, mock
}

// newSQLiteDB opens a migrated in-memory SQLite database.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectDB(context.Background(), config.DB{DSN: "sqlite://:memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
