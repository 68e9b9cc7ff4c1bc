package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/MKhiriev/lexsight/internal/config"
)

// VertexGenerator implements [Generator] on a Vertex AI Gemini model.
type VertexGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewVertexGenerator creates a client for cfg.ProjectID in cfg.Location.
// Application default credentials are used unless cfg.CredentialsFile is set.
func NewVertexGenerator(ctx context.Context, cfg config.AI) (*VertexGenerator, error) {
	if cfg.ProjectID == "" || cfg.Location == "" {
		return nil, errors.New("NewVertexGenerator: projectID and location cannot be empty")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockOnlyHigh},
	}

	return &VertexGenerator{client: client, model: model}, nil
}

// Generate sends prompt as a single user turn and returns the concatenated
// text parts of the first candidate.
func (g *VertexGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("GenerateContent: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// Close releases the underlying client.
func (g *VertexGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String())
}
