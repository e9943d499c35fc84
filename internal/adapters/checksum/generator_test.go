package checksum_test

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/checksum"
	"go.trai.ch/retrial/internal/core/domain"
)

func writeArtifact(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, domain.FilePerm))
	return path
}

func TestGenerator_SHA512(t *testing.T) {
	content := []byte("artifact bytes")
	path := writeArtifact(t, "lib-1.0.jar", content)

	g, err := checksum.NewGenerator(domain.SHA512, 2)
	require.NoError(t, err)

	got, err := g.GenerateChecksum(t.Context(), path)
	require.NoError(t, err)

	want := sha512.Sum512(content)
	assert.Equal(t, domain.SHA512, got.Algorithm())
	assert.Equal(t, hex.EncodeToString(want[:]), got.Hex())
}

func TestGenerator_SHA256(t *testing.T) {
	content := make([]byte, 200<<10)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := writeArtifact(t, "big.zip", content)

	g, err := checksum.NewGenerator(domain.SHA256, 0)
	require.NoError(t, err)

	got, err := g.GenerateChecksum(t.Context(), path)
	require.NoError(t, err)

	want := sha256.Sum256(content)
	assert.Equal(t, "sha256:"+hex.EncodeToString(want[:]), got.String())
}

func TestGenerator_EmptyFile(t *testing.T) {
	path := writeArtifact(t, "empty.jar", nil)

	g, err := checksum.NewGenerator(domain.SHA512, 1)
	require.NoError(t, err)

	got, err := g.GenerateChecksum(t.Context(), path)
	require.NoError(t, err)

	want := sha512.Sum512(nil)
	assert.Equal(t, hex.EncodeToString(want[:]), got.Hex())
}

func TestGenerator_SameContentSameChecksum(t *testing.T) {
	a := writeArtifact(t, "a.jar", []byte("same"))
	b := writeArtifact(t, "b.jar", []byte("same"))

	g, err := checksum.NewGenerator(domain.SHA512, 1)
	require.NoError(t, err)

	ca, err := g.GenerateChecksum(t.Context(), a)
	require.NoError(t, err)
	cb, err := g.GenerateChecksum(t.Context(), b)
	require.NoError(t, err)

	assert.True(t, ca.Equal(cb))
}

func TestGenerator_Errors(t *testing.T) {
	g, err := checksum.NewGenerator(domain.SHA512, 1)
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		_, err := g.GenerateChecksum(t.Context(), filepath.Join(t.TempDir(), "missing.jar"))
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorContains(t, err, domain.ErrArtifactOpenFailed.Error())
	})

	t.Run("directory", func(t *testing.T) {
		_, err := g.GenerateChecksum(t.Context(), t.TempDir())
		require.ErrorContains(t, err, domain.ErrArtifactNotRegular.Error())
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeArtifact(t, "lib.jar", []byte("x"))
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := g.GenerateChecksum(ctx, path)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewGenerator_UnknownAlgorithm(t *testing.T) {
	_, err := checksum.NewGenerator(domain.Algorithm("md5"), 1)
	require.ErrorContains(t, err, domain.ErrUnknownAlgorithm.Error())
}

func TestGenerator_Concurrent(t *testing.T) {
	g, err := checksum.NewGenerator(domain.SHA256, 2)
	require.NoError(t, err)

	paths := make([]string, 16)
	for i := range paths {
		paths[i] = writeArtifact(t, "lib.jar", []byte{byte(i)})
	}

	results := make([]domain.Checksum, len(paths))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Go(func() {
			c, err := g.GenerateChecksum(t.Context(), p)
			assert.NoError(t, err)
			results[i] = c
		})
	}
	wg.Wait()

	for i, c := range results {
		want := sha256.Sum256([]byte{byte(i)})
		assert.Equal(t, hex.EncodeToString(want[:]), c.Hex())
	}
}
