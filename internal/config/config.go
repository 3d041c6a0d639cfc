package config

import "time"

// Config holds all engine configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm" validate:"required"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Inference InferenceConfig `mapstructure:"inference"`
}

// ServerConfig contains process-level settings.
type ServerConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig selects and configures the optional semantic judge used by
// asynchronous answer evaluation. Provider "none" disables it.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=none gemini openai anthropic mock"`

	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	GeminiModel  string `mapstructure:"gemini_model"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`
	OpenAIModel   string `mapstructure:"openai_model"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`

	AnthropicAPIKey string `mapstructure:"anthropic_api_key" validate:"required_if=Provider anthropic"`
	AnthropicModel  string `mapstructure:"anthropic_model"`

	// Timeout bounds a single judge call, retries included.
	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries        int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	RetryDelaySeconds int           `mapstructure:"retry_delay_seconds" validate:"gte=0,lte=60"`
}

// JudgeEnabled reports whether a semantic judge provider is configured.
func (c LLMConfig) JudgeEnabled() bool {
	return c.Provider != "" && c.Provider != "none"
}

// CacheConfig configures the Redis verdict cache.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

// InferenceConfig holds the difficulty inference cutoffs.
type InferenceConfig struct {
	QuickResponseMs    int64   `mapstructure:"quick_response_ms" validate:"gt=0"`
	NormalResponseMs   int64   `mapstructure:"normal_response_ms" validate:"gtfield=QuickResponseMs"`
	SlowResponseMs     int64   `mapstructure:"slow_response_ms" validate:"gtfield=NormalResponseMs"`
	MatureIntervalDays float64 `mapstructure:"mature_interval_days" validate:"gte=0"`
	MatureScale        float64 `mapstructure:"mature_scale" validate:"gt=0,lte=1"`
}
