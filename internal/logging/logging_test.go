package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("records not saved", "op", "add")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "records not saved")
	assert.Contains(t, out, "op=add")
	assert.Contains(t, out, "component=tally")
}

func TestNew_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "loud")
	require.Error(t, err)
	require.NotNil(t, logger)

	logger.Info("still logs at info")
	assert.Contains(t, buf.String(), "still logs at info")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
