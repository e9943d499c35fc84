package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/retrial/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "success", level: logger.LevelSuccess, want: "✓ message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
		{name: "debug is filtered", level: slog.LevelDebug, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestHandler(t)
			lg.Log(t.Context(), tt.level, "message")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_GroupQualifiesLaterAttrsOnly(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.With("backend", "file").WithGroup("run").With("id", "r1").WithGroup("stage").Info("written", "entries", 3)

	assert.Equal(t, "written backend=file run.id=r1 run.stage.entries=3\n", buf.String())
}

func TestPrettyHandler_AttrValues(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.Info("stored",
		"path", "/tmp/my baseline.json",
		"empty", "",
		slog.Group("s3", "bucket", "builds", "key", "retrial/baseline.json"),
		slog.Group("", "inline", true),
		slog.Attr{},
	)

	assert.Equal(t,
		"stored path=\"/tmp/my baseline.json\" empty=\"\" s3.bucket=builds s3.key=retrial/baseline.json inline=true\n",
		buf.String())
}

func TestPrettyHandler_WithAttrsDoesNotShareState(t *testing.T) {
	lg, buf := newTestHandler(t)
	base := lg.With("a", 1)

	base.With("b", 2).Info("first")
	base.With("c", 3).Info("second")

	assert.Equal(t, "first a=1 b=2\nsecond a=1 c=3\n", buf.String())
}
