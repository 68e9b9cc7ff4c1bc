// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ai holds the optional generative backend used by the analysis
// service, the prompt templates it is driven with, and a Vertex AI
// implementation of [Generator].
package ai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
)

// Backend is an optional [Generator]. The zero value is the absent backend.
type Backend struct {
	generator Generator
}

// None returns a Backend without a generator.
func None() Backend {
	return Backend{}
}

// Some returns a Backend wrapping gen. A nil gen yields [None].
func Some(gen Generator) Backend {
	return Backend{generator: gen}
}

// Get returns the generator and whether one is configured.
func (b Backend) Get() (Generator, bool) {
	return b.generator, b.generator != nil
}

// Enabled reports whether a generator is configured.
func (b Backend) Enabled() bool {
	return b.generator != nil
}

// Close releases the generator if it holds resources.
func (b Backend) Close() error {
	if closer, ok := b.generator.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// NewBackend resolves the backend once at startup. Without a project id the
// absent backend is returned and AI features degrade to placeholder texts.
func NewBackend(ctx context.Context, cfg config.AI, log *logger.Logger) (Backend, error) {
	if !cfg.Enabled() {
		log.Warn().
			Str("func", "ai.NewBackend").
			Msg("AI_PROJECT_ID is not set, analysis features are disabled and answer with placeholder texts")
		return None(), nil
	}

	gen, err := NewVertexGenerator(ctx, cfg)
	if err != nil {
		log.Err(err).Str("func", "ai.NewBackend").Msg("error creating vertex generator")
		return None(), fmt.Errorf("error creating AI backend: %w", err)
	}

	log.Info().
		Str("func", "ai.NewBackend").
		Str("model", cfg.Model).
		Str("location", cfg.Location).
		Msg("AI backend enabled")

	return Some(gen), nil
}

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("model returned an empty response")
