package extract

import "errors"

// SupportedTypes lists the accepted upload formats for error responses.
const SupportedTypes = "PDF, DOCX, DOC, TXT, RTF, and images (JPG, PNG, etc.)"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrPDFExtraction       = errors.New("failed to extract text from PDF")
	ErrDOCXExtraction      = errors.New("failed to extract text from DOCX")
	ErrImageExtraction     = errors.New("failed to extract text from image")
	ErrOCR                 = errors.New("failed to perform OCR on document")
	ErrNoTextExtracted     = errors.New("no text could be extracted from the document")
	ErrNoPageImages        = errors.New("pdf has no page images to recognise")
)
