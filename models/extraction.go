package models

// ExtractionMethod names the strategy that produced an extraction.
type ExtractionMethod string

const (
	ExtractionPDFText  ExtractionMethod = "pdf-text"
	ExtractionPDFOCR   ExtractionMethod = "pdf-ocr"
	ExtractionDOCX     ExtractionMethod = "docx"
	ExtractionDOC      ExtractionMethod = "doc"
	ExtractionText     ExtractionMethod = "text"
	ExtractionRTF      ExtractionMethod = "rtf"
	ExtractionImageOCR ExtractionMethod = "image-ocr"
)

// Extraction is the outcome of turning an uploaded file into plain text.
type Extraction struct {
	Text     string
	FileName string
	FileType string
	Method   ExtractionMethod
}
