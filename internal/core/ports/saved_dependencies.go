package ports

import (
	"context"

	"go.trai.ch/retrial/internal/core/domain"
)

// SavedDependenciesRepository persists the dependency baseline.
//
//go:generate mockgen -source=saved_dependencies.go -destination=mocks/mock_saved_dependencies.go -package=mocks
type SavedDependenciesRepository interface {
	// Set replaces the entire baseline with the given one in a single atomic operation.
	// A reader never observes a partially written baseline.
	Set(ctx context.Context, baseline domain.Baseline) error

	// Get returns the current baseline, or an empty baseline if none was recorded yet.
	Get(ctx context.Context) (domain.Baseline, error)

	// Describe returns a human readable location of the baseline, e.g. a file path or URL.
	Describe() string
}
