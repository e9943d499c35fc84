package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("resolving live dependencies") },
			goldenName: "info_basic",
		},
		{
			name:       "multiline info",
			log:        func(l *logger.Logger) { l.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "success",
			log:        func(l *logger.Logger) { l.Success("recorded 2 dependencies") },
			goldenName: "success_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("no sources configured") },
			goldenName: "warn_basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("permission denied"), "failed to open artifact"),
				"failed to compute dependency checksum",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "stdlib chain is not split",
			err: fmt.Errorf("failed to resolve: %w",
				fmt.Errorf("manifest missing: %w", os.ErrNotExist)),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "metadata is rendered sorted",
			err: func() error {
				err := zerr.Wrap(errors.New("truncated"), "failed to compute dependency checksum")
				err = zerr.With(err, "key", "com.example:lib:1.0")
				return zerr.With(err, "file", "/deps/lib.jar")
			}(),
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Success("recorded")
	err := zerr.With(zerr.New("failed to write baseline"), "backend", "file")
	lg.Error(err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var success map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &success))
	assert.Equal(t, "SUCCESS", success["level"])
	assert.Equal(t, "recorded", success["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "failed to write baseline", failure["msg"])
	assert.Equal(t, "file", failure["backend"])
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Info("hello")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestCollectErrorEntries(t *testing.T) {
	err := zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "top")

	entries := logger.CollectErrorEntries(err)
	assert.Equal(t, []string{"top", "middle", "root"}, entries)
	assert.Equal(t,
		"Error: top\n\n  Caused by:\n    → middle\n    → root",
		logger.FormatErrorEntries(entries),
	)
}
