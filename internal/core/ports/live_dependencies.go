// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/retrial/internal/core/domain"
)

// LiveDependenciesRepository supplies the dependencies currently resolved for the build.
//
//go:generate mockgen -source=live_dependencies.go -destination=mocks/mock_live_dependencies.go -package=mocks
type LiveDependenciesRepository interface {
	// Get returns the current live dependency set. Keys are unique; order is not significant.
	// An empty set is valid. It returns an error if resolution cannot be performed.
	Get(ctx context.Context) ([]domain.LiveDependency, error)
}
