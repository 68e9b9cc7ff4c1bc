package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lexsight/models"
)

var (
	userColumns     = []string{"id", "email", "name", "image", "password", "email_verified", "created_at", "updated_at"}
	sessionColumns  = []string{"token_hash", "user_id", "expires_at", "created_at"}
	documentColumns = []string{"id", "user_id", "name", "content", "type", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Name, user.Image, user.Password, user.EmailVerified, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(session.TableName()).
		Columns(sessionColumns...).
		Values(session.TokenHash, session.UserID, session.ExpiresAt, session.CreatedAt).
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.Lt{"expires_at": now}).
		ToSql()
}

func buildInsertDocumentQuery(b sq.StatementBuilderType, doc models.Document) (string, []any, error) {
	return b.Insert(doc.TableName()).
		Columns(documentColumns...).
		Values(doc.ID, doc.UserID, doc.Name, doc.Content, string(doc.Type), doc.CreatedAt).
		ToSql()
}

// buildListDocumentsQuery orders newest first; UUIDv7 ids break ties between
// documents created within the same clock tick.
func buildListDocumentsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(documentColumns...).
		From(models.Document{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectDocumentQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Select(documentColumns...).
		From(models.Document{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildDeleteDocumentQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Delete(models.Document{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}
