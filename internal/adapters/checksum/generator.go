// Package checksum computes cryptographic digests of dependency artifacts.
package checksum

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"
	"os"
	"runtime"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

var _ ports.ChecksumGenerator = (*Generator)(nil)

const chunkSize = 64 << 10

// Generator digests artifact files, bounding how many files are read at once.
type Generator struct {
	algorithm domain.Algorithm
	sem       *semaphore.Weighted
}

// NewGenerator creates a Generator. A non-positive concurrency selects runtime.NumCPU().
func NewGenerator(algorithm domain.Algorithm, concurrency int) (*Generator, error) {
	if algorithm.Size() == 0 {
		return nil, zerr.With(domain.ErrUnknownAlgorithm, "algorithm", string(algorithm))
	}
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Generator{
		algorithm: algorithm,
		sem:       semaphore.NewWeighted(int64(concurrency)),
	}, nil
}

// GenerateChecksum digests the content of file. Only regular files are accepted.
func (g *Generator) GenerateChecksum(ctx context.Context, file string) (domain.Checksum, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return domain.Checksum{}, err
	}
	defer g.sem.Release(1)

	f, err := os.Open(file) //nolint:gosec // Path comes from the live dependency set
	if err != nil {
		return domain.Checksum{}, zerr.With(zerr.Wrap(err, domain.ErrArtifactOpenFailed.Error()), "path", file)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	info, err := f.Stat()
	if err != nil {
		return domain.Checksum{}, zerr.With(zerr.Wrap(err, domain.ErrArtifactOpenFailed.Error()), "path", file)
	}
	if !info.Mode().IsRegular() {
		return domain.Checksum{}, zerr.With(domain.ErrArtifactNotRegular, "path", file)
	}

	h := g.newHash()
	if err := copyWithContext(ctx, h, f); err != nil {
		return domain.Checksum{}, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", file)
	}

	return domain.NewChecksum(g.algorithm, h.Sum(nil))
}

func (g *Generator) newHash() hash.Hash {
	if g.algorithm == domain.SHA256 {
		return sha256.New()
	}
	return sha512.New()
}

// copyWithContext copies src into dst, checking ctx between chunks.
func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
