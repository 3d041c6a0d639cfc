package llm

import (
	"time"

	"github.com/phrazzld/scry-engine/internal/config"
)

// Config holds provider selection and per-provider settings.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic" or "mock".
	Provider string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Retry     RetryConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional; OpenAI-compatible endpoints
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns three attempts with exponential backoff from 1s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// ConfigFrom maps the application's LLM settings onto provider configuration.
// MaxRetries counts retries, so attempts are MaxRetries+1.
func ConfigFrom(c config.LLMConfig) Config {
	retry := DefaultRetryConfig()
	retry.MaxAttempts = c.MaxRetries + 1
	if c.RetryDelaySeconds > 0 {
		retry.InitialWait = time.Duration(c.RetryDelaySeconds) * time.Second
		retry.MaxWait = max(retry.MaxWait, retry.InitialWait)
	}

	return Config{
		Provider: c.Provider,
		Gemini: GeminiConfig{
			APIKey: c.GeminiAPIKey,
			Model:  c.GeminiModel,
		},
		OpenAI: OpenAIConfig{
			APIKey:  c.OpenAIAPIKey,
			Model:   c.OpenAIModel,
			BaseURL: c.OpenAIBaseURL,
		},
		Anthropic: AnthropicConfig{
			APIKey: c.AnthropicAPIKey,
			Model:  c.AnthropicModel,
		},
		Retry: retry,
	}
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names are used as-is so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
