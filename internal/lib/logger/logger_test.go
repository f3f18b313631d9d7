package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{env: "local", enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{env: "development", enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{env: "production", enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{env: "", enabled: slog.LevelError, muted: slog.LevelWarn},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			log := logger.Setup(tt.env, &bytes.Buffer{})

			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.muted))
		})
	}
}

func TestSetup_ProductionDropsTime(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	logger.Setup("production", &buf).Warn("disk almost full", "free", "1%")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "time")
	assert.Equal(t, "disk almost full", record["msg"])
}
