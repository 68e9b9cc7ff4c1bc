package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/store"
	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/MKhiriev/lexsight/models"
)

// documentService scopes every operation to the session user stored in ctx.
// The owner is never taken from the caller's payload.
type documentService struct {
	documentRepository store.DocumentRepository

	logger *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		logger:             logger,
	}
}

// List returns the caller's documents, newest first. Anonymous callers get
// an empty list.
func (d *documentService) List(ctx context.Context) ([]models.Document, error) {
	user, ok := utils.SessionUserFromContext(ctx)
	if !ok {
		return []models.Document{}, nil
	}

	docs, err := d.documentRepository.ListDocumentsByUser(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("error listing documents")
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	if docs == nil {
		docs = []models.Document{}
	}

	return docs, nil
}

// Create stores doc for the caller and returns its id.
func (d *documentService) Create(ctx context.Context, doc models.NewDocument) (string, error) {
	user, ok := utils.SessionUserFromContext(ctx)
	if !ok {
		return "", ErrMustBeLoggedInToAdd
	}

	created, err := d.documentRepository.CreateDocument(ctx, models.Document{
		UserID:  user.ID,
		Name:    doc.Name,
		Content: doc.Content,
		Type:    doc.Type,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("error creating document")
		return "", fmt.Errorf("error creating document: %w", err)
	}

	return created.ID, nil
}

// Get returns a document owned by the caller. Foreign and missing documents
// are indistinguishable.
func (d *documentService) Get(ctx context.Context, id string) (models.Document, error) {
	user, ok := utils.SessionUserFromContext(ctx)
	if !ok {
		return models.Document{}, ErrMustBeLoggedIn
	}

	doc, err := d.documentRepository.FindDocument(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return models.Document{}, ErrDocumentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("document_id", id).Msg("error fetching document")
		return models.Document{}, fmt.Errorf("error fetching document: %w", err)
	}

	return doc, nil
}

// Delete removes a document owned by the caller.
func (d *documentService) Delete(ctx context.Context, id string) error {
	user, ok := utils.SessionUserFromContext(ctx)
	if !ok {
		return ErrMustBeLoggedInToDelete
	}

	if err := d.documentRepository.DeleteDocument(ctx, id, user.ID); err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return ErrCannotDeleteDocument
		}
		logger.FromContext(ctx).Err(err).Str("document_id", id).Msg("error deleting document")
		return fmt.Errorf("error deleting document: %w", err)
	}

	return nil
}
