// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

const (
	// minPDFTextLayer is the text layer length above which a PDF is not
	// sent to OCR.
	minPDFTextLayer = 50

	// minExtractedText is the shortest trimmed result accepted as success.
	minExtractedText = 10
)

// Strategies bundles the format strategies used by a [Dispatcher].
type Strategies struct {
	PDFText    PDFTextReader
	Rasterizer PageRasterizer
	Documents  DocumentReader
	OCR        Recognizer
}

// NewDefaultStrategies wires the production strategies.
func NewDefaultStrategies(cfg config.OCR) Strategies {
	return Strategies{
		PDFText:    NewPDFTextReader(),
		Rasterizer: NewPDFCPURasterizer(),
		Documents:  NewDocconvReader(),
		OCR:        NewTesseractRecognizer(cfg.TessdataPrefix, cfg.Parallelism),
	}
}

// Dispatcher chooses and runs the extraction strategy for an upload. It
// holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	strategies Strategies
	languages  []string
	fallback   []string
}

// NewDispatcher creates a Dispatcher with the OCR language profile from cfg.
func NewDispatcher(strategies Strategies, cfg config.OCR) *Dispatcher {
	return &Dispatcher{
		strategies: strategies,
		languages:  cfg.Languages,
		fallback:   []string{cfg.FallbackLanguage},
	}
}

// Extract returns the plain text of data.
//
// A result whose trimmed text is shorter than ten characters is returned
// together with [ErrNoTextExtracted] so callers can echo what was found.
func (d *Dispatcher) Extract(ctx context.Context, data []byte, mimeType, fileName string) (models.Extraction, error) {
	log := logger.FromContext(ctx)

	format, err := Detect(mimeType, fileName)
	if err != nil {
		log.Debug().Str("mime", mimeType).Str("file", fileName).Msg("unsupported upload")
		return models.Extraction{}, err
	}

	result := models.Extraction{
		FileName: fileName,
		FileType: mimeType,
	}

	switch format {
	case FormatPDF:
		result.Text, result.Method, err = d.extractPDF(ctx, data)
	case FormatDOCX:
		result.Method = models.ExtractionDOCX
		result.Text, err = d.extractDocument(ctx, d.strategies.Documents.ReadDocx, data)
	case FormatDOC:
		result.Method = models.ExtractionDOC
		result.Text, err = d.extractDocument(ctx, d.strategies.Documents.ReadDoc, data)
	case FormatTXT:
		result.Method = models.ExtractionText
		result.Text = decodeUTF8(data)
	case FormatRTF:
		result.Method = models.ExtractionRTF
		result.Text = decodeUTF8(data)
	case FormatImage:
		result.Method = models.ExtractionImageOCR
		result.Text, err = d.extractImage(ctx, data)
	}
	if err != nil {
		log.Err(err).Str("format", string(format)).Msg("extraction failed")
		return models.Extraction{}, err
	}

	if utf8.RuneCountInString(strings.TrimSpace(result.Text)) < minExtractedText {
		return result, ErrNoTextExtracted
	}

	log.Debug().
		Str("format", string(format)).
		Str("method", string(result.Method)).
		Int("length", utf8.RuneCountInString(result.Text)).
		Msg("text extracted")

	return result, nil
}

func (d *Dispatcher) extractPDF(ctx context.Context, data []byte) (string, models.ExtractionMethod, error) {
	log := logger.FromContext(ctx)

	text, err := d.strategies.PDFText.ReadText(ctx, data)
	if err != nil {
		// a broken text layer is handled like an empty one
		log.Debug().Err(err).Msg("pdf text layer unreadable, falling back to OCR")
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > minPDFTextLayer {
		return text, models.ExtractionPDFText, nil
	}

	log.Debug().Msg("pdf appears to be scanned or has minimal text, attempting OCR")

	pages, err := d.strategies.Rasterizer.Rasterize(ctx, data)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrPDFExtraction, err)
	}
	if len(pages) == 0 {
		return "", "", fmt.Errorf("%w: %w", ErrPDFExtraction, ErrNoPageImages)
	}

	text, err = d.recognize(ctx, pages)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrPDFExtraction, err)
	}

	return text, models.ExtractionPDFOCR, nil
}

func (d *Dispatcher) extractDocument(ctx context.Context, read func(context.Context, []byte) (string, error), data []byte) (string, error) {
	text, err := read(ctx, data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDOCXExtraction, err)
	}
	return strings.TrimSpace(text), nil
}

func (d *Dispatcher) extractImage(ctx context.Context, data []byte) (string, error) {
	text, err := d.recognize(ctx, [][]byte{data})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageExtraction, err)
	}
	return text, nil
}

// recognize runs OCR with the language profile and retries once with the
// fallback language.
func (d *Dispatcher) recognize(ctx context.Context, images [][]byte) (string, error) {
	log := logger.FromContext(ctx)

	text, err := d.strategies.OCR.Recognize(ctx, images, d.languages)
	if err == nil {
		return strings.TrimSpace(text), nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", err
	}

	log.Warn().Err(err).Strs("languages", d.languages).Msg("OCR failed, retrying with fallback language")

	text, err = d.strategies.OCR.Recognize(ctx, images, d.fallback)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOCR, err)
	}

	return strings.TrimSpace(text), nil
}

// decodeUTF8 keeps the bytes verbatim, replacing invalid sequences with
// U+FFFD. RTF control words are not stripped.
func decodeUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
