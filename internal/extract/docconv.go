package extract

import (
	"bytes"
	"context"
	"fmt"

	"code.sajari.com/docconv"
)

// DocconvReader reads word-processor documents with code.sajari.com/docconv.
// Legacy .doc files need the antiword binary on PATH.
type DocconvReader struct{}

// NewDocconvReader returns the default [DocumentReader].
func NewDocconvReader() *DocconvReader {
	return &DocconvReader{}
}

// ReadDocx extracts the text of an Office Open XML document.
func (DocconvReader) ReadDocx(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("error converting docx: %w", err)
	}

	return text, nil
}

// ReadDoc extracts the text of a legacy Word document.
func (DocconvReader) ReadDoc(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, _, err := docconv.ConvertDoc(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("error converting doc: %w", err)
	}

	return text, nil
}
