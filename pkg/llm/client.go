package llm

import (
	"context"
	"fmt"
)

// Generator is the summarization engine contract: one prompt in, generated
// text out. Implementations must honor ctx cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New picks an engine implementation by provider name.
func New(provider, apiKey string) (Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: missing API key for provider %q", provider)
	}

	switch provider {
	case "openai":
		return NewOpenAIClient(apiKey), nil
	case "anthropic":
		return NewAnthropicClient(apiKey), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q (valid: openai, anthropic)", provider)
	}
}
