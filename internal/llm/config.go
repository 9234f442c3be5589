package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects an LLM backend and carries per-backend settings.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini",
	// "openrouter", or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a whole Generate call, retries included. Persona
	// replies ship the full debate transcript, so this stays generous.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff applied to transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap fast model on every backend.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv layers DOJO_* environment variables over the defaults.
// Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	envOverride(&cfg.Provider, "DOJO_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "DOJO_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "DOJO_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "DOJO_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "DOJO_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "DOJO_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "DOJO_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "DOJO_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "DOJO_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "DOJO_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig looks for the vendors' own key variables so a first
// run works without any DOJO_* setup. Probed in order: Anthropic,
// OpenAI, Gemini, OpenRouter. Returns false when no key is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}

	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate confirms the selected backend has the key it needs.
func (c Config) Validate() error {
	keys := map[string]struct {
		env string
		set bool
	}{
		"anthropic":  {"DOJO_ANTHROPIC_API_KEY", c.Anthropic.APIKey != ""},
		"openai":     {"DOJO_OPENAI_API_KEY", c.OpenAI.APIKey != ""},
		"gemini":     {"DOJO_GEMINI_API_KEY", c.Gemini.APIKey != ""},
		"openrouter": {"DOJO_OPENROUTER_API_KEY", c.OpenRouter.APIKey != ""},
	}

	if c.Provider == "mock" {
		return nil
	}
	req, ok := keys[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if !req.set {
		return fmt.Errorf("%s is required for the %s provider", req.env, c.Provider)
	}
	return nil
}
