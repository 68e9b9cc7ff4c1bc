// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lexsight/internal/ai"
	"github.com/MKhiriev/lexsight/internal/logger"
)

// Placeholder texts returned while no AI backend is configured. The wording
// is fixed for clients; the backend itself is enabled by AI_PROJECT_ID.
const (
	SummaryUnavailable = "AI summarization is currently unavailable. Please configure GEMINI_API_KEY to enable AI features. For now, please review the clause manually."
	RiskUnavailable    = "AI risk analysis is currently unavailable. Please configure GEMINI_API_KEY to enable AI features. For now, please review the contract manually with a legal professional."
)

// analysisService is the façade over the optional AI backend. Each
// operation makes at most one generation call and never retries.
type analysisService struct {
	backend ai.Backend

	logger *logger.Logger
}

func NewAnalysisService(backend ai.Backend, logger *logger.Logger) AnalysisService {
	return &analysisService{
		backend: backend,
		logger:  logger,
	}
}

func (a *analysisService) Enabled() bool {
	return a.backend.Enabled()
}

// SummarizeClause returns a plain-language summary of clauseText, or the
// summary placeholder when AI is not configured.
func (a *analysisService) SummarizeClause(ctx context.Context, clauseText string) (string, error) {
	gen, ok := a.backend.Get()
	if !ok {
		return SummaryUnavailable, nil
	}

	prompt, err := ai.SummaryPrompt(clauseText)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	return a.generate(ctx, gen, prompt, "summarize")
}

// AnalyzeContractRisk returns a markdown risk report for contractText, or
// the risk placeholder when AI is not configured.
func (a *analysisService) AnalyzeContractRisk(ctx context.Context, contractText string) (string, error) {
	gen, ok := a.backend.Get()
	if !ok {
		return RiskUnavailable, nil
	}

	prompt, err := ai.RiskPrompt(contractText)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	return a.generate(ctx, gen, prompt, "risk")
}

func (a *analysisService) generate(ctx context.Context, gen ai.Generator, prompt, operation string) (string, error) {
	log := logger.FromContext(ctx)

	out, err := gen.Generate(ctx, prompt)
	if err != nil {
		log.Err(err).Str("operation", operation).Msg("AI generation failed")
		return "", fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	log.Debug().Str("operation", operation).Int("length", len(out)).Msg("AI generation finished")
	return out, nil
}
