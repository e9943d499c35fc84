package live

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

var _ ports.LiveDependenciesRepository = (*GoModSource)(nil)

// GoModSource lists the modules required by a go.mod file and maps each one to the
// zip archive the go command keeps in the module download cache.
//
// The source never downloads anything; a module missing from the cache surfaces later
// as an unreadable artifact.
type GoModSource struct {
	path  string
	cache string
}

// NewGoModSource creates a GoModSource. An empty cache selects the default module cache.
func NewGoModSource(goModPath, cache string) *GoModSource {
	return &GoModSource{path: goModPath, cache: cache}
}

// Get parses go.mod, applies its replace directives and returns one dependency per module.
func (s *GoModSource) Get(ctx context.Context) ([]domain.LiveDependency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleFileReadFailed.Error()), "path", s.path)
	}

	mf, err := modfile.Parse(s.path, data, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleFileParseFailed.Error()), "path", s.path)
	}

	cache, err := s.cacheDir()
	if err != nil {
		return nil, err
	}

	deps := make([]domain.LiveDependency, 0, len(mf.Require))
	for _, req := range mf.Require {
		mod, ok := applyReplace(mf.Replace, req.Mod)
		if !ok {
			// Replaced by a local directory: there is no archive to fingerprint.
			continue
		}

		file, err := archivePath(cache, mod)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleFileParseFailed.Error()), "module", mod.String())
		}

		deps = append(deps, domain.LiveDependency{Key: moduleKey(mod), File: file})
	}

	return deps, nil
}

func (s *GoModSource) cacheDir() (string, error) {
	if s.cache != "" {
		return s.cache, nil
	}
	if dir := os.Getenv("GOMODCACHE"); dir != "" {
		return dir, nil
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		return filepath.Join(filepath.SplitList(gopath)[0], "pkg", "mod"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrModuleCacheNotFound.Error())
	}
	return filepath.Join(home, "go", "pkg", "mod"), nil
}

// applyReplace returns the module version that is actually built for mod.
// It reports false when mod is replaced by a filesystem path.
func applyReplace(replaces []*modfile.Replace, mod module.Version) (module.Version, bool) {
	for _, r := range replaces {
		if r.Old.Path != mod.Path {
			continue
		}
		if r.Old.Version != "" && r.Old.Version != mod.Version {
			continue
		}
		if r.New.Version == "" {
			return module.Version{}, false
		}
		return r.New, true
	}
	return mod, true
}

func archivePath(cache string, mod module.Version) (string, error) {
	escPath, err := module.EscapePath(mod.Path)
	if err != nil {
		return "", err
	}
	escVersion, err := module.EscapeVersion(mod.Version)
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "cache", "download", filepath.FromSlash(escPath), "@v", escVersion+".zip"), nil
}

// moduleKey maps a module path to group and name by splitting at the last element.
func moduleKey(mod module.Version) domain.DependencyKey {
	group, name := path.Split(mod.Path)
	if group == "" {
		group = name
	}
	return domain.NewDependencyKey(path.Clean(group), name, mod.Version, "")
}
