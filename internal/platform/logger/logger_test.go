package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/quatrainhq/quatrain-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		debugEnabled  bool
		errorDisabled bool
	}{
		{name: "debug_level", logLevel: "debug", debugEnabled: true},
		{name: "info_level", logLevel: "info"},
		{name: "warn_level", logLevel: "WARN"},
		{name: "error_level", logLevel: "error"},
		{name: "invalid_level_falls_back_to_info", logLevel: "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tt.debugEnabled, logger.Enabled(context.Background(), slog.LevelDebug))
			// Error records are never dropped, whatever the configured level.
			assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("round_trip", func(t *testing.T) {
		ctx := WithLogger(context.Background(), base)
		got, ok := FromContext(ctx)
		assert.True(t, ok)
		assert.Same(t, base, got)
	})

	t.Run("missing_logger", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("fallback", func(t *testing.T) {
		got := FromContextOrDefault(context.Background(), base)
		assert.Same(t, base, got)
	})

	t.Run("default_when_no_fallback", func(t *testing.T) {
		got := FromContextOrDefault(context.Background(), nil)
		assert.NotNil(t, got)
	})
}
