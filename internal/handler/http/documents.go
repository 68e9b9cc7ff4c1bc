package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
	"github.com/go-chi/chi/v5"
)

const documentIDParam = "id"

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.DocumentService.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error listing documents")
		writeError(w, r, err)
		return
	}

	resp := make([]models.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, models.NewDocumentResponse(d))
	}

	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var doc models.NewDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	id, err := h.services.DocumentService.Create(r.Context(), doc)
	if err != nil {
		log.Err(err).Msg("error creating document")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("document_id", id).Msg("document created")
	writeJSON(w, r, models.CreateDocumentResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.DocumentService.Get(r.Context(), chi.URLParam(r, documentIDParam))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error getting document")
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewDocumentResponse(doc), http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DocumentService.Delete(r.Context(), chi.URLParam(r, documentIDParam)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error deleting document")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// analyzeDocumentRisk runs the risk analysis over a stored document owned
// by the caller.
func (h *Handler) analyzeDocumentRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.services.DocumentService.Get(ctx, chi.URLParam(r, documentIDParam))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error getting document for risk analysis")
		writeError(w, r, err)
		return
	}

	if strings.TrimSpace(doc.Content) == "" {
		writeJSON(w, r, models.RiskResponse{RiskSummary: noContractMessage}, http.StatusOK)
		return
	}

	h.writeRisk(w, r, doc.Content)
}
