package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use. Empty disables LLM
	// features; hints then come from the reference sheet.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible APIs
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with no provider selected and default
// models for each provider. Hints must stay snappy, so retries are short.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     3 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from GEOQUEST_* environment variables.
// When GEOQUEST_LLM_PROVIDER is unset it falls back to DiscoverConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Provider = os.Getenv("GEOQUEST_LLM_PROVIDER")
	if cfg.Provider == "" {
		if found, ok := DiscoverConfig(); ok {
			cfg = found
		}
	}

	setFromEnv(&cfg.Anthropic.APIKey, "GEOQUEST_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "GEOQUEST_ANTHROPIC_MODEL")
	setFromEnv(&cfg.OpenAI.APIKey, "GEOQUEST_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "GEOQUEST_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "GEOQUEST_OPENAI_BASE_URL")
	setFromEnv(&cfg.Gemini.APIKey, "GEOQUEST_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "GEOQUEST_GEMINI_MODEL")
	setFromEnv(&cfg.OpenRouter.APIKey, "GEOQUEST_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "GEOQUEST_OPENROUTER_MODEL")
	setFromEnv(&cfg.OpenRouter.BaseURL, "GEOQUEST_OPENROUTER_BASE_URL")

	if v := os.Getenv("GEOQUEST_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none
// is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderMock, "":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("an API key is required for the %s provider (GEOQUEST_%s_API_KEY)",
			c.Provider, envName(c.Provider))
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC"
	case ProviderOpenAI:
		return "OPENAI"
	case ProviderGemini:
		return "GEMINI"
	case ProviderOpenRouter:
		return "OPENROUTER"
	}
	return ""
}

// ModelName returns the configured model of the selected provider.
func (c Config) ModelName() string {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic.Model
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderGemini:
		return c.Gemini.Model
	case ProviderOpenRouter:
		return c.OpenRouter.Model
	case ProviderMock:
		return "mock"
	}
	return ""
}
