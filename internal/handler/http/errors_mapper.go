package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lexsight/internal/extract"
	"github.com/MKhiriev/lexsight/internal/service"
	"github.com/MKhiriev/lexsight/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:    http.StatusBadRequest,
	ErrNoFileProvided: http.StatusBadRequest,
	ErrUnauthorized:   http.StatusUnauthorized,

	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrMustBeLoggedInToAdd:    http.StatusUnauthorized,
	service.ErrMustBeLoggedInToDelete: http.StatusUnauthorized,
	service.ErrMustBeLoggedIn:         http.StatusUnauthorized,
	service.ErrDocumentNotFound:       http.StatusNotFound,
	service.ErrCannotDeleteDocument:   http.StatusNotFound,
	service.ErrAnalysisFailed:         http.StatusBadGateway,
	service.ErrSessionCreation:        http.StatusInternalServerError,

	extract.ErrUnsupportedFileType: http.StatusBadRequest,
	extract.ErrNoTextExtracted:     http.StatusBadRequest,
	extract.ErrPDFExtraction:       http.StatusInternalServerError,
	extract.ErrDOCXExtraction:      http.StatusInternalServerError,
	extract.ErrImageExtraction:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrDocumentNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the user-facing text for errors whose Go message is
// not meant for the browser.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:     "Invalid email or password",
	service.ErrMustBeLoggedInToAdd:    "You must be logged in to add documents",
	service.ErrMustBeLoggedInToDelete: "You must be logged in to delete documents",
	service.ErrMustBeLoggedIn:         "You must be logged in",
	service.ErrDocumentNotFound:       "Document not found",
	service.ErrCannotDeleteDocument:   "Document not found or you do not have permission to delete it",
	store.ErrEmailAlreadyExists:       "User with this email already exists",
	ErrUnauthorized:                   "Unauthorized",

	extract.ErrUnsupportedFileType: "Unsupported file type",
	extract.ErrNoTextExtracted:     "No text could be extracted from the document",
	extract.ErrPDFExtraction:       "Failed to extract text from PDF",
	extract.ErrDOCXExtraction:      "Failed to extract text from DOCX",
	extract.ErrImageExtraction:     "Failed to extract text from image",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the public message for err. Unknown errors never
// leak their text.
func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if statusFromError(err) == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}
