package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds provider configuration. API keys are deliberately absent:
// they live in the credential store and reach providers through the
// rotation pool.
type Config struct {
	// Provider selects which backend to use.
	// Values: "gemini", "anthropic", "openai", "mock"
	Provider string

	Gemini    GeminiConfig
	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig

	// Timeout is the maximum duration for a single request. Default: 60s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	// FlashModel serves generation workloads (questions, study plans).
	// Default: "gemini-flash".
	FlashModel string

	// ProModel serves the tutor chat. Default: "gemini-pro".
	ProModel string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	Model string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
// BaseURL allows OpenRouter and other OpenAI-compatible APIs.
type OpenAIConfig struct {
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			FlashModel: "gemini-flash",
			ProModel:   "gemini-pro",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("GRACEFUL_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("GRACEFUL_GEMINI_MODEL"); m != "" {
		cfg.Gemini.FlashModel = m
	}
	if m := os.Getenv("GRACEFUL_GEMINI_PRO_MODEL"); m != "" {
		cfg.Gemini.ProModel = m
	}
	if m := os.Getenv("GRACEFUL_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if m := os.Getenv("GRACEFUL_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("GRACEFUL_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	return cfg
}

// EnvKeys probes the standard API key env vars for the configured provider.
// Used to seed the credential pool when the store has no active keys yet,
// so a fresh checkout still works with nothing but an env var set.
func (c Config) EnvKeys() []string {
	var names []string
	switch c.Provider {
	case "gemini":
		names = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}
	case "anthropic":
		names = []string{"ANTHROPIC_API_KEY"}
	case "openai":
		names = []string{"OPENAI_API_KEY", "OPENROUTER_API_KEY"}
	}
	var keys []string
	for _, n := range names {
		if k := os.Getenv(n); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks that the provider selection is known.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini", "anthropic", "openai", "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
