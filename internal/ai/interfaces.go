package ai

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/ai_mock.go -package=mock

// Generator turns a fully rendered prompt into model output text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
