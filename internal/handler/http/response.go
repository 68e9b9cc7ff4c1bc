package http

import (
	"net/http"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/MKhiriev/lexsight/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError answers with the JSON error body and the status mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, r, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, msg string, status int) {
	writeJSON(w, r, models.ErrorResponse{Error: msg}, status)
}
