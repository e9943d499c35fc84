package ports

import "go.trai.ch/retrial/internal/core/domain"

// ConfigLoader defines the interface for loading the recorder configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd. An explicit path, when non-empty,
	// skips discovery. Missing configuration yields defaults rooted at cwd.
	Load(cwd, path string) (*domain.Config, error)
}
