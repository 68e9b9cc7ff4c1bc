package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// LedongPDFReader reads the PDF text layer with github.com/ledongthuc/pdf.
type LedongPDFReader struct{}

// NewPDFTextReader returns the default [PDFTextReader].
func NewPDFTextReader() *LedongPDFReader {
	return &LedongPDFReader{}
}

// ReadText returns the plain text of every page in order.
func (LedongPDFReader) ReadText(ctx context.Context, data []byte) (text string, err error) {
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	if err = ctx.Err(); err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error opening pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error reading pdf text layer: %w", err)
	}

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("error reading pdf text layer: %w", err)
	}

	return buf.String(), nil
}
