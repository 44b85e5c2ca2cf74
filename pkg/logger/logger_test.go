package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{" INFO ", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, err == nil, tt.in)
	}
}

func TestLoggerFiltersAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo).Named("dial")
	ctx := context.Background()

	l.Debug(ctx, "hidden")
	l.Info(ctx, "selection", String("outer", "boring"), Int("n", 2), Error(errors.New("boom")))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=selection")
	assert.Contains(t, out, "dial.outer=boring")
	assert.Contains(t, out, "dial.n=2")
	assert.Contains(t, out, "dial.error=boom")
	assert.Contains(t, out, "logger_test.go:")
}

func TestGlobalLevel(t *testing.T) {
	require.NoError(t, Init())
	require.NoError(t, SetLevelString("error"))
	assert.False(t, levelVar.Level() < slog.LevelError)
	assert.Error(t, SetLevelString("nope"))
	require.NoError(t, SetLevelString("info"))
	assert.NotNil(t, Named("x"))
}
