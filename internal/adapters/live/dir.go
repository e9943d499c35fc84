package live

import (
	"context"
	"path/filepath"
	"strings"
	"unicode"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LiveDependenciesRepository = (*DirSource)(nil)

const (
	// DefaultDirPattern selects jar archives. A pattern must pick out one file per artifact,
	// since "lib-1.0.jar" and "lib-1.0.pom" yield the same key.
	DefaultDirPattern = "*.jar"
	// DefaultDirGroup is the group assigned to artifacts found in a dir source.
	DefaultDirGroup = "local"
)

// knownClassifiers are the trailing name segments recognised as a classifier rather
// than part of the version.
var knownClassifiers = map[string]struct{}{
	"sources": {},
	"javadoc": {},
	"tests":   {},
	"natives": {},
	"all":     {},
	"shaded":  {},
}

// DirSource inventories artifacts lying in a directory tree, for builds that vendor their
// dependencies. Coordinates are derived from file names of the form
// "<name>-<version>[-<classifier>].<ext>".
type DirSource struct {
	root    string
	pattern string
	group   string
}

// NewDirSource creates a DirSource. Empty pattern and group select the defaults.
func NewDirSource(root, pattern, group string) *DirSource {
	if pattern == "" {
		pattern = DefaultDirPattern
	}
	if group == "" {
		group = DefaultDirGroup
	}
	return &DirSource{root: root, pattern: pattern, group: group}
}

// Get walks the directory and returns one dependency per matching file.
func (s *DirSource) Get(ctx context.Context) ([]domain.LiveDependency, error) {
	var deps []domain.LiveDependency

	for file, err := range walkFiles(s.root, s.pattern) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactDirReadFailed.Error()), "path", s.root)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, version, classifier, ok := ParseArtifactName(filepath.Base(file))
		if !ok {
			return nil, zerr.With(domain.ErrArtifactNameUnparseable, "path", file)
		}

		key := domain.NewDependencyKey(s.group, name, version, classifier)
		if err := key.Validate(); err != nil {
			return nil, zerr.With(err, "path", file)
		}

		deps = append(deps, domain.LiveDependency{Key: key, File: file})
	}

	return deps, nil
}

// ParseArtifactName splits a file name into name, version and optional classifier.
// The version starts at the first '-' that is followed by a digit.
func ParseArtifactName(base string) (name, version, classifier string, ok bool) {
	stem := base
	if ext := filepath.Ext(stem); ext != "" && ext != stem {
		stem = strings.TrimSuffix(stem, ext)
	}
	stem = strings.TrimSuffix(stem, ".tar")
	if strings.ContainsRune(stem, ':') {
		return "", "", "", false
	}

	split := -1
	for i := 0; i < len(stem)-1; i++ {
		if stem[i] == '-' && unicode.IsDigit(rune(stem[i+1])) {
			split = i
			break
		}
	}
	if split <= 0 {
		return "", "", "", false
	}

	name, version = stem[:split], stem[split+1:]
	if i := strings.LastIndexByte(version, '-'); i > 0 {
		if _, known := knownClassifiers[version[i+1:]]; known {
			version, classifier = version[:i], version[i+1:]
		}
	}

	return name, version, classifier, true
}
