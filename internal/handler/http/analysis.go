package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

const (
	noClauseMessage   = "Please select a clause to summarize."
	noContractMessage = "No document content to analyze."

	summaryFailedMessage = "An error occurred while summarizing. Please try again."
	riskFailedMessage    = "An error occurred during risk analysis. Please try again."
)

func (h *Handler) summarizeClause(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, r, models.SummaryResponse{Summary: noClauseMessage}, http.StatusOK)
		return
	}

	summary, err := h.services.AnalysisService.SummarizeClause(r.Context(), req.Text)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("clause summarization failed")
		writeErrorMessage(w, r, summaryFailedMessage, statusFromError(err))
		return
	}

	writeJSON(w, r, models.SummaryResponse{Summary: summary}, http.StatusOK)
}

func (h *Handler) analyzeRisk(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, r, models.RiskResponse{RiskSummary: noContractMessage}, http.StatusOK)
		return
	}

	h.writeRisk(w, r, req.Text)
}

func (h *Handler) writeRisk(w http.ResponseWriter, r *http.Request, text string) {
	report, err := h.services.AnalysisService.AnalyzeContractRisk(r.Context(), text)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("risk analysis failed")
		writeErrorMessage(w, r, riskFailedMessage, statusFromError(err))
		return
	}

	writeJSON(w, r, models.RiskResponse{RiskSummary: report}, http.StatusOK)
}
