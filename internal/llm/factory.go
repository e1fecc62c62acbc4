package llm

import (
	"context"
	"fmt"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is one of "gemini", "openai", "mock". Empty means
	// discover: the first provider with an API key wins (Gemini, then
	// OpenAI).
	Provider string

	Gemini GeminiConfig
	OpenAI OpenAIConfig
}

// NewProvider creates a Provider from configuration.
//
// A missing API credential is not an initialization error: the returned
// provider fails every Generate call with ErrProviderUnavailable instead,
// so AI-dependent operations fail at the gateway call rather than at
// startup.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return newOrUnavailable(NewGeminiProvider(ctx, cfg.Gemini))
	case "openai":
		return newOrUnavailable(NewOpenAIProvider(cfg.OpenAI))
	case "mock":
		return NewMockProvider(), nil
	case "":
		// Discover by API key.
		if cfg.Gemini.APIKey != "" {
			return newOrUnavailable(NewGeminiProvider(ctx, cfg.Gemini))
		}
		if cfg.OpenAI.APIKey != "" {
			return newOrUnavailable(NewOpenAIProvider(cfg.OpenAI))
		}
		return &unavailableProvider{reason: "no model API credential configured"}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

func newOrUnavailable(p Provider, err error) (Provider, error) {
	if err != nil {
		return &unavailableProvider{reason: err.Error()}, nil
	}
	return p, nil
}

// unavailableProvider satisfies Provider for a misconfigured gateway.
type unavailableProvider struct {
	reason string
}

func (p *unavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: fmt.Errorf("%s", p.reason)}
}

func (p *unavailableProvider) ModelID() string { return "unavailable" }
