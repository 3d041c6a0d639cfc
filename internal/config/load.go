package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// defaults are applied before any file or environment value. Every key is
// listed so that AutomaticEnv can resolve it during Unmarshal.
var defaults = map[string]any{
	"server.log_level": "info",

	"llm.provider":            "none",
	"llm.gemini_api_key":      "",
	"llm.gemini_model":        "gemini-flash",
	"llm.openai_api_key":      "",
	"llm.openai_model":        "gpt-4o-mini",
	"llm.openai_base_url":     "",
	"llm.anthropic_api_key":   "",
	"llm.anthropic_model":     "claude-haiku",
	"llm.timeout":             "10s",
	"llm.max_retries":         2,
	"llm.retry_delay_seconds": 1,

	"cache.enabled":  false,
	"cache.addr":     "",
	"cache.password": "",
	"cache.db":       0,
	"cache.ttl":      "24h",

	"inference.quick_response_ms":    5000,
	"inference.normal_response_ms":   15000,
	"inference.slow_response_ms":     30000,
	"inference.mature_interval_days": 7.0,
	"inference.mature_scale":         0.9,
}

// Load reads configuration from an optional config.yaml in the working
// directory and from SCRY_-prefixed environment variables. Environment
// variables take precedence over file values.
// Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	return load("")
}

// LoadFile is like Load but reads the given config file, which must exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path cannot be empty")
	}
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("SCRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
