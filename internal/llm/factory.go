package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Launchpad/config"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Provider  string // gemini | openai | anthropic
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Retry     RetryConfig

	// Timeout bounds one logical call, retries included.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Provider:  "gemini",
		Gemini:    GeminiConfig{Model: "gemini-3-flash-preview"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic: AnthropicConfig{Model: "claude-haiku-4-5-20251001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFrom maps application config onto provider config. LLM_MODEL applies
// to whichever provider is selected.
func ConfigFrom(cfg *config.Config) Config {
	c := DefaultConfig()
	if cfg.LLM.Provider != "" {
		c.Provider = cfg.LLM.Provider
	}
	c.Gemini.APIKey = cfg.LLM.GeminiApiKey
	c.OpenAI.APIKey = cfg.LLM.OpenAIApiKey
	c.OpenAI.BaseURL = cfg.LLM.OpenAIBaseURL
	c.Anthropic.APIKey = cfg.LLM.AnthropicApiKey

	if m := cfg.LLM.Model; m != "" {
		switch c.Provider {
		case "gemini":
			c.Gemini.Model = m
		case "openai":
			c.OpenAI.Model = m
		case "anthropic":
			c.Anthropic.Model = m
		}
	}
	if cfg.LLM.MaxAttempts > 0 {
		c.Retry.MaxAttempts = cfg.LLM.MaxAttempts
	}
	if cfg.LLM.Timeout > 0 {
		c.Timeout = cfg.LLM.Timeout
	}
	return c
}

// NewProvider builds the configured provider wrapped as
// caller -> timeout -> retry -> logging -> base.
// A missing API key does not stop the server; the returned provider fails
// every call with a misconfigured ErrProviderUnavailable, which is never
// retried.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = keyed(cfg.Gemini.APIKey, "GEMINI_API_KEY", cfg.Gemini.Model, func() (Provider, error) {
			return NewGeminiProvider(ctx, cfg.Gemini)
		})
	case "openai":
		base, err = keyed(cfg.OpenAI.APIKey, "OPENAI_API_KEY", cfg.OpenAI.Model, func() (Provider, error) {
			return NewOpenAIProvider(cfg.OpenAI)
		})
	case "anthropic":
		base, err = keyed(cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY", cfg.Anthropic.Model, func() (Provider, error) {
			return NewAnthropicProvider(cfg.Anthropic)
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if _, ok := base.(*unavailableProvider); !ok {
		log.Info().Str("provider", cfg.Provider).Str("model", base.ModelID()).Msg("LLM provider ready")
	}
	return WithTimeout(WithRetry(WithLogging(base), cfg.Retry), cfg.Timeout), nil
}

func keyed(key, env, model string, build func() (Provider, error)) (Provider, error) {
	if key == "" {
		log.Warn().Msgf("%s is not set. Content generation will be non-functional.", env)
		return &unavailableProvider{model: model, reason: env + " is not set"}, nil
	}
	return build()
}

// NewProviderFromConfig is the fx constructor.
func NewProviderFromConfig(cfg *config.Config) (Provider, error) {
	return NewProvider(context.Background(), ConfigFrom(cfg))
}

type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

type unavailableProvider struct {
	model  string
	reason string
}

func (u *unavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: errors.New(u.reason), Misconfigured: true}
}

func (u *unavailableProvider) ModelID() string {
	return u.model
}
