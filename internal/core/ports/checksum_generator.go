package ports

import (
	"context"

	"go.trai.ch/retrial/internal/core/domain"
)

// ChecksumGenerator computes the checksum of an artifact file.
//
//go:generate mockgen -source=checksum_generator.go -destination=mocks/mock_checksum_generator.go -package=mocks
type ChecksumGenerator interface {
	// GenerateChecksum digests the content of file.
	// It is safe for concurrent use and returns an error if the content is unreadable.
	GenerateChecksum(ctx context.Context, file string) (domain.Checksum, error)
}
