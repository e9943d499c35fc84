package ports

import (
	"context"

	"go.trai.ch/retrial/internal/core/domain"
)

// ResultLogger records the outcome of a recording run.
//
//go:generate mockgen -source=result_logger.go -destination=mocks/mock_result_logger.go -package=mocks
type ResultLogger interface {
	LogSuccess(ctx context.Context, summary domain.RunSummary) error
	LogFailure(ctx context.Context, cause error) error
}
