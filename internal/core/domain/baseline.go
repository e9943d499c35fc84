package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Baseline is the trusted set of saved dependencies, unique by key.
// The zero Baseline is an empty, usable baseline.
type Baseline struct {
	entries map[DependencyKey]Checksum
}

// NewBaseline builds a baseline from saved dependencies.
// It rejects duplicate keys and entries without a checksum.
func NewBaseline(deps ...SavedDependency) (Baseline, error) {
	entries := make(map[DependencyKey]Checksum, len(deps))
	for _, dep := range deps {
		if dep.Key.IsZero() {
			return Baseline{}, ErrInvalidDependencyKey
		}
		if dep.Checksum.IsZero() {
			return Baseline{}, zerr.With(ErrInvalidChecksum, "key", dep.Key.String())
		}
		if _, ok := entries[dep.Key]; ok {
			return Baseline{}, zerr.With(ErrDuplicateDependency, "key", dep.Key.String())
		}
		entries[dep.Key] = dep.Checksum
	}
	return Baseline{entries: entries}, nil
}

// Len returns the number of entries.
func (b Baseline) Len() int {
	return len(b.entries)
}

// Lookup returns the checksum saved for key.
func (b Baseline) Lookup(key DependencyKey) (Checksum, bool) {
	c, ok := b.entries[key]
	return c, ok
}

// Entries returns the saved dependencies sorted by key.
func (b Baseline) Entries() []SavedDependency {
	keys := slices.SortedFunc(maps.Keys(b.entries), DependencyKey.Compare)
	out := make([]SavedDependency, 0, len(keys))
	for _, k := range keys {
		out = append(out, SavedDependency{Key: k, Checksum: b.entries[k]})
	}
	return out
}

// Equal reports whether both baselines hold exactly the same entries.
func (b Baseline) Equal(other Baseline) bool {
	return maps.Equal(b.entries, other.entries)
}
