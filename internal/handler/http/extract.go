package http

import (
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/MKhiriev/lexsight/internal/extract"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

const (
	uploadFileField = "file"

	// multipartMemory is the part of an upload kept in memory while parsing;
	// the rest spills to temporary files.
	multipartMemory = 8 << 20
)

// extractText reads the multipart "file" field and answers with its text.
func (h *Handler) extractText(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Int64("limit", tooLarge.Limit).Msg("upload is too large")
			writeErrorMessage(w, r, "File is too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("error parsing multipart form")
		writeError(w, r, ErrNoFileProvided)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFileField)
	if err != nil {
		log.Err(err).Msg("no file in upload")
		writeError(w, r, ErrNoFileProvided)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("error reading uploaded file")
		writeError(w, r, err)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	log.Debug().
		Str("file_name", header.Filename).
		Str("mime_type", mimeType).
		Int("size", len(data)).
		Msg("extracting text")

	result, err := h.services.ExtractionService.Extract(r.Context(), data, mimeType, header.Filename)
	if err != nil {
		log.Err(err).Str("file_name", header.Filename).Msg("text extraction failed")
		writeExtractionError(w, r, result, err)
		return
	}

	log.Info().
		Str("file_name", header.Filename).
		Str("method", string(result.Method)).
		Msg("text extracted")

	writeJSON(w, r, models.ExtractResponse{
		Success:    true,
		Text:       result.Text,
		FileName:   result.FileName,
		FileType:   result.FileType,
		TextLength: utf8.RuneCountInString(result.Text),
	}, http.StatusOK)
}

func writeExtractionError(w http.ResponseWriter, r *http.Request, result models.Extraction, err error) {
	resp := models.ErrorResponse{Error: messageFromError(err)}

	switch {
	case errors.Is(err, extract.ErrUnsupportedFileType):
		resp.SupportedTypes = extract.SupportedTypes
	case errors.Is(err, extract.ErrNoTextExtracted):
		text := result.Text
		resp.ExtractedText = &text
	}

	writeJSON(w, r, resp, statusFromError(err))
}
