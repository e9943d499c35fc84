package baseline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/baseline"
	"go.trai.ch/retrial/internal/core/domain"
)

func TestOpen_FileDefaults(t *testing.T) {
	root := t.TempDir()

	store, err := baseline.Open(t.Context(), &domain.Config{Root: root})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, filepath.Join(root, ".retrial", "baseline.json"), store.Describe())
}

func TestOpen_SQLiteRelativeDSN(t *testing.T) {
	root := t.TempDir()

	store, err := baseline.Open(t.Context(), &domain.Config{
		Root:     root,
		Baseline: domain.BaselineConfig{Backend: domain.BackendSQL, DSN: "baseline.db"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(t.Context(), sampleBaseline(t)))
	assert.FileExists(t, filepath.Join(root, "baseline.db"))
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := baseline.Open(t.Context(), &domain.Config{
		Root:     t.TempDir(),
		Baseline: domain.BaselineConfig{Backend: "etcd"},
	})
	require.ErrorContains(t, err, domain.ErrUnknownBackend.Error())
}

func TestOpen_S3RequiresBucket(t *testing.T) {
	_, err := baseline.Open(t.Context(), &domain.Config{
		Root:     t.TempDir(),
		Baseline: domain.BaselineConfig{Backend: domain.BackendS3},
	})
	require.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
}

func TestOpen_SQLiteCreatesDirectory(t *testing.T) {
	root := t.TempDir()

	store, err := baseline.Open(t.Context(), &domain.Config{
		Root:     root,
		Baseline: domain.BaselineConfig{Backend: domain.BackendSQL, DSN: ".retrial/baseline.db"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.DirExists(t, filepath.Join(root, ".retrial"))
}
