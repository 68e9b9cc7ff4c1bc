package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

// documentRepository is the SQL implementation of [DocumentRepository].
// It executes all document operations against the "documents" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext]; document contents are never logged.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository].
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDocument inserts doc with a fresh UUIDv7 id and the current time.
func (d *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc.ID = d.ids.Generate()
	doc.CreatedAt = d.now()

	query, args, err := buildInsertDocumentQuery(d.builder, doc)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.CreateDocument").Msg("failed to create query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = d.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.CreateDocument").
			Str("user_id", doc.UserID).
			Bool("retryable", d.isRetryable(err)).
			Msg("failed to insert document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return doc, nil
}

// ListDocumentsByUser returns every document owned by userID, newest first.
// An owner without documents gets an empty, non-nil slice.
func (d *documentRepository) ListDocumentsByUser(ctx context.Context, userID string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(d.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.ListDocumentsByUser").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.ListDocumentsByUser").
			Str("user_id", userID).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Document, 0, 16)

	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.ListDocumentsByUser").
				Str("user_id", userID).
				Int("iteration", len(results)).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results = append(results, doc)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "documentRepository.ListDocumentsByUser").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// FindDocument returns the document with id if userID owns it.
func (d *documentRepository) FindDocument(ctx context.Context, id, userID string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(d.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.FindDocument").Msg("failed to create query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(d.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "documentRepository.FindDocument").Str("document_id", id).Msg("failed to find document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// DeleteDocument removes the document with id only if userID owns it.
// Zero affected rows yields [ErrDocumentNotFound].
func (d *documentRepository) DeleteDocument(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(d.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.DeleteDocument").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := d.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.DeleteDocument").Str("document_id", id).Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc     models.Document
		docType string
	)
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Name,
		&doc.Content,
		&docType,
		&doc.CreatedAt,
	)
	doc.Type = models.DocumentType(docType)

	return doc, err
}
