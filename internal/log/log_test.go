package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", LevelDebug, true},
		{"DEBUG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"Warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"loud", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LevelWarn, Output: &buf})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	assert.NotContains(t, out, "msg=debug")
	assert.NotContains(t, out, "msg=info")
	assert.Contains(t, out, "level=WARN msg=warn")
	assert.Contains(t, out, "level=ERROR msg=error")
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LevelDebug, Output: &buf, Prefix: "edj"})

	logger.WithComponent("history").Info("undo", "line", 3)

	out := buf.String()
	assert.Contains(t, out, "app=edj")
	assert.Contains(t, out, "component=history")
	assert.Contains(t, out, "line=3")
}

func TestLogger_SetLevelShared(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LevelError, Output: &buf})
	child := logger.WithComponent("nav")

	child.Info("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, child.Level())
	assert.True(t, child.Enabled(LevelDebug))
	child.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNull(t *testing.T) {
	logger := Null()
	assert.False(t, logger.Enabled(LevelError))
	logger.Error("dropped")
}

func TestDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	require.NotNil(t, prev)
	assert.Equal(t, LevelWarn, prev.Level())

	custom := Null()
	SetDefault(custom)
	assert.Same(t, custom, Default())
}
