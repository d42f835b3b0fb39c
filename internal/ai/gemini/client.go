package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"hiresense/internal/ai"
)

const defaultModel = "gemini-2.5-flash"

// Generator wraps the Google GenAI client behind the ai.Generator interface.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{client: client, modelName: model}, nil
}

// GenerateContent sends the prompt to Gemini and returns the concatenated
// textual reply. Transport failures come back wrapped in ai.ErrRateLimited or
// ai.ErrUnavailable when they can be classified.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", fmt.Errorf("%w: generator is not initialized", ai.ErrUnavailable)
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("%w: empty response", ai.ErrUnavailable)
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

// classify maps a Gemini transport error onto the shared ai sentinels while
// keeping the original error in the chain.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %w", ai.ErrRateLimited, err)
	case strings.Contains(msg, "404"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %w", ai.ErrUnavailable, err)
	}
	return fmt.Errorf("generate content: %w", err)
}
