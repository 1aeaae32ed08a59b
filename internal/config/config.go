package config

import "strings"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
// AllowedOrigins is a comma-separated list so it can be set from a
// single environment variable.
type ServerConfig struct {
	Port           int    `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	LogLevel       string `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// Origins returns the configured CORS origins as a slice.
func (c ServerConfig) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// LLMConfig contains all settings for the external generation API.
// An empty API key is valid: the service then runs on the offline
// verse composer only.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"          validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=60"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"     validate:"gte=1,lte=300"`
}

// Configured reports whether the external generation API can be used.
func (c LLMConfig) Configured() bool {
	return c.GeminiAPIKey != ""
}
