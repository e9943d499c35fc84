package baseline_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/core/domain"
)

func checksum(t *testing.T, alg domain.Algorithm, b byte) domain.Checksum {
	t.Helper()
	c, err := domain.NewChecksum(alg, bytes.Repeat([]byte{b}, alg.Size()))
	require.NoError(t, err)
	return c
}

func sampleBaseline(t *testing.T) domain.Baseline {
	t.Helper()
	b, err := domain.NewBaseline(
		domain.SavedDependency{
			Key:      domain.NewDependencyKey("com.example", "b", "2.0", ""),
			Checksum: checksum(t, domain.SHA512, 0xbb),
		},
		domain.SavedDependency{
			Key:      domain.NewDependencyKey("com.example", "a", "1.0", "sources"),
			Checksum: checksum(t, domain.SHA256, 0xaa),
		},
	)
	require.NoError(t, err)
	return b
}
