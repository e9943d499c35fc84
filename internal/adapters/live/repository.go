package live

import (
	"context"
	"path/filepath"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.LiveDependenciesRepository = (*Repository)(nil)

// Repository is the union of several live dependency sources.
//
// The same dependency reported by two sources with the same file is kept once.
// The same key with different files is a conflict.
type Repository struct {
	sources []ports.LiveDependenciesRepository
}

// NewRepository creates a Repository over sources.
func NewRepository(sources ...ports.LiveDependenciesRepository) *Repository {
	return &Repository{sources: sources}
}

// FromConfig builds the repository described by cfg. Relative paths are resolved against cfg.Root.
func FromConfig(cfg *domain.Config) (*Repository, error) {
	sources := make([]ports.LiveDependenciesRepository, 0, len(cfg.Sources))
	for i, sc := range cfg.Sources {
		path := resolve(cfg.Root, sc.Path)
		switch sc.Type {
		case domain.SourceManifest:
			if path == "" {
				path = resolve(cfg.Root, domain.ManifestFileName)
			}
			sources = append(sources, NewManifestSource(path))
		case domain.SourceGoMod:
			if path == "" {
				path = resolve(cfg.Root, "go.mod")
			}
			sources = append(sources, NewGoModSource(path, resolve(cfg.Root, sc.Cache)))
		case domain.SourceDir:
			if path == "" {
				path = cfg.Root
			}
			sources = append(sources, NewDirSource(path, sc.Pattern, sc.Group))
		default:
			err := zerr.With(domain.ErrUnknownSourceType, "type", sc.Type)
			return nil, zerr.With(err, "source", i)
		}
	}
	return NewRepository(sources...), nil
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// Get queries every source concurrently and merges their results in source order.
func (r *Repository) Get(ctx context.Context) ([]domain.LiveDependency, error) {
	results := make([][]domain.LiveDependency, len(r.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range r.sources {
		g.Go(func() error {
			deps, err := src.Get(gctx)
			if err != nil {
				return err
			}
			results[i] = deps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(results)
}

func merge(results [][]domain.LiveDependency) ([]domain.LiveDependency, error) {
	var merged []domain.LiveDependency
	seen := make(map[domain.DependencyKey]string)

	for _, deps := range results {
		for _, dep := range deps {
			prev, ok := seen[dep.Key]
			switch {
			case !ok:
				seen[dep.Key] = dep.File
				merged = append(merged, dep)
			case prev == dep.File:
			default:
				err := zerr.With(domain.ErrDuplicateDependency, "key", dep.Key.String())
				err = zerr.With(err, "first", prev)
				return nil, zerr.With(err, "second", dep.File)
			}
		}
	}

	if merged == nil {
		merged = []domain.LiveDependency{}
	}
	return merged, nil
}
