package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stolasapp/yell/internal/config"
)

func TestToLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: config.LevelDebug, want: slog.LevelDebug},
		{level: config.LevelInfo, want: slog.LevelInfo},
		{level: config.LevelWarn, want: slog.LevelWarn},
		{level: config.LevelError, want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
	}
	for _, test := range tests {
		t.Run(test.level, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, toLogLevel(test.level))
		})
	}
}

func TestInitSlog(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.LogLevel = config.LevelWarn
	logger := InitSlog(cfg)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
