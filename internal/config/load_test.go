package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing and returns a
// cleanup function that restores the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load applies the expected defaults when
// no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"QUATRAIN_SERVER_PORT":             "",
		"QUATRAIN_SERVER_LOG_LEVEL":        "",
		"QUATRAIN_SERVER_ALLOWED_ORIGINS":  "",
		"QUATRAIN_LLM_GEMINI_API_KEY":      "",
		"QUATRAIN_LLM_MODEL_NAME":          "",
		"QUATRAIN_LLM_MAX_RETRIES":         "",
		"QUATRAIN_LLM_RETRY_DELAY_SECONDS": "",
		"QUATRAIN_LLM_TIMEOUT_SECONDS":     "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 2, cfg.LLM.RetryDelaySeconds)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.False(t, cfg.LLM.Configured(), "LLM should not be configured without an API key")
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://localhost:3001"},
		cfg.Server.Origins())
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"QUATRAIN_SERVER_PORT":            "9090",
		"QUATRAIN_SERVER_LOG_LEVEL":       "debug",
		"QUATRAIN_SERVER_ALLOWED_ORIGINS": "https://poems.example.com, https://staging.example.com",
		"QUATRAIN_LLM_GEMINI_API_KEY":     "test-api-key",
		"QUATRAIN_LLM_MODEL_NAME":         "gemini-2.5-pro",
		"QUATRAIN_LLM_MAX_RETRIES":        "5",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.True(t, cfg.LLM.Configured())
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, 5, cfg.LLM.MaxRetries)
	assert.Equal(t,
		[]string{"https://poems.example.com", "https://staging.example.com"},
		cfg.Server.Origins())
}

// TestLoadValidationErrors verifies that Load rejects invalid configurations.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "invalid_port_number",
			envVars: map[string]string{
				"QUATRAIN_SERVER_PORT": "999999",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "invalid_log_level",
			envVars: map[string]string{
				"QUATRAIN_SERVER_LOG_LEVEL": "verbose",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "retry_delay_out_of_range",
			envVars: map[string]string{
				"QUATRAIN_LLM_RETRY_DELAY_SECONDS": "0",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "too_many_retries",
			envVars: map[string]string{
				"QUATRAIN_LLM_MAX_RETRIES": "50",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.errorSubstring)
		})
	}
}
