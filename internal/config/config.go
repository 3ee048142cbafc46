package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Store   StoreConfig   `mapstructure:"store"   validate:"required"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all Groq provider related settings. The API key is
// required at startup: a missing credential is a configuration error, not
// a per-request failure.
type LLMConfig struct {
	GroqAPIKey        string  `mapstructure:"groq_api_key"        validate:"required"`
	Model             string  `mapstructure:"model"               validate:"required"`
	BaseURL           string  `mapstructure:"base_url"            validate:"required,url"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"     validate:"required,gt=0"`
	MaxRetries        int     `mapstructure:"max_retries"         validate:"gte=0"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"gte=0"`
	Temperature       float64 `mapstructure:"temperature"         validate:"gte=0,lte=2"`
	MaxTokens         int     `mapstructure:"max_tokens"          validate:"gt=0"`
}

// Timeout returns the per-call provider timeout as a duration.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelay returns the base backoff delay as a duration.
func (c LLMConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// StoreConfig contains blog store persistence settings.
type StoreConfig struct {
	SnapshotPath string `mapstructure:"snapshot_path" validate:"required"`
}

// TracingConfig contains optional external tracing settings. An empty
// API key disables tracing; nothing else in the service depends on it.
type TracingConfig struct {
	APIKey string `mapstructure:"api_key"`
}
