package llm

import (
	"context"
	"fmt"

	"github.com/linxi/wordchamp/internal/store"
)

// NewProvider builds the configured provider wrapped with retry and
// logging middleware, in that order: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, logRepo store.LLMLogRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, logRepo), cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from WORDCHAMP_* variables,
// falling back to probing the standard API key variables. The second
// return is false when no provider is configured at all.
func NewProviderFromEnv(ctx context.Context, logRepo store.LLMLogRepo) (Provider, bool, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		p, perr := NewProvider(ctx, cfg, logRepo)
		return p, true, perr
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, false, nil
	}
	p, err := NewProvider(ctx, cfg, logRepo)
	return p, true, err
}
