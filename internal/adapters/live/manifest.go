// Package live provides repositories that inventory the dependency artifacts resolved for a build.
package live

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.LiveDependenciesRepository = (*ManifestSource)(nil)

// manifestDTO is the on-disk layout of a dependency manifest.
type manifestDTO struct {
	Dependencies []manifestEntryDTO `yaml:"dependencies"`
}

type manifestEntryDTO struct {
	Key  string `yaml:"key"`
	File string `yaml:"file"`
}

// ManifestSource reads live dependencies from a YAML manifest written by the build tool.
// Relative artifact paths are resolved against the manifest's directory.
type ManifestSource struct {
	path string
}

// NewManifestSource creates a ManifestSource reading path.
func NewManifestSource(path string) *ManifestSource {
	return &ManifestSource{path: path}
}

// Get parses the manifest.
func (s *ManifestSource) Get(ctx context.Context) ([]domain.LiveDependency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", s.path)
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", s.path)
	}

	base := filepath.Dir(s.path)
	deps := make([]domain.LiveDependency, 0, len(dto.Dependencies))
	for i, entry := range dto.Dependencies {
		key, err := domain.ParseDependencyKey(entry.Key)
		if err != nil {
			err = zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
			err = zerr.With(err, "path", s.path)
			return nil, zerr.With(err, "entry", i)
		}
		if entry.File == "" {
			err := zerr.With(domain.ErrMissingArtifactFile, "key", entry.Key)
			return nil, zerr.With(err, "path", s.path)
		}

		file := entry.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(base, file)
		}
		deps = append(deps, domain.LiveDependency{Key: key, File: file})
	}

	return deps, nil
}
