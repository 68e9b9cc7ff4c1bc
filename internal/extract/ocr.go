// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/lexsight/internal/logger"
)

// TesseractRecognizer runs Tesseract through gosseract. Each image gets its
// own client because a gosseract client is not safe for concurrent use.
type TesseractRecognizer struct {
	tessdataPrefix string
	parallelism    int
}

// NewTesseractRecognizer returns a recognizer that processes up to
// parallelism images at once.
func NewTesseractRecognizer(tessdataPrefix string, parallelism int) *TesseractRecognizer {
	return &TesseractRecognizer{
		tessdataPrefix: tessdataPrefix,
		parallelism:    parallelism,
	}
}

// Recognize implements [Recognizer].
func (t *TesseractRecognizer) Recognize(ctx context.Context, images [][]byte, languages []string) (string, error) {
	return recognizePages(ctx, images, t.parallelism, func(_ context.Context, image []byte) (string, error) {
		return t.recognizeOne(image, languages)
	})
}

func (t *TesseractRecognizer) recognizeOne(image []byte, languages []string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if t.tessdataPrefix != "" {
		client.TessdataPrefix = t.tessdataPrefix
	}
	if err := client.SetLanguage(languages...); err != nil {
		return "", fmt.Errorf("error setting OCR languages: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("error loading image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("error recognising text: %w", err)
	}

	return text, nil
}

// recognizePages runs recognize over images with at most parallelism calls
// in flight and joins the page texts in input order. The first error
// cancels the remaining pages.
func recognizePages(
	ctx context.Context,
	images [][]byte,
	parallelism int,
	recognize func(ctx context.Context, image []byte) (string, error),
) (string, error) {
	log := logger.FromContext(ctx)

	if parallelism < 1 {
		parallelism = 1
	}

	texts := make([]string, len(images))
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, image := range images {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			text, err := recognize(gctx, image)
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			texts[i] = strings.TrimSpace(text)

			log.Debug().
				Int32("recognised", done.Add(1)).
				Int("total", len(images)).
				Msg("OCR progress")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(texts, "\n\n"), nil
}
