package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DependencyKey identifies a dependency artifact independently of where it lives on disk.
// It is the join key between live and saved records and is comparable with ==.
type DependencyKey struct {
	Group      InternedString
	Name       InternedString
	Version    InternedString
	Classifier InternedString
}

// NewDependencyKey creates a key from its coordinates. The classifier may be empty.
func NewDependencyKey(group, name, version, classifier string) DependencyKey {
	return DependencyKey{
		Group:      NewInternedString(group),
		Name:       NewInternedString(name),
		Version:    NewInternedString(version),
		Classifier: NewInternedString(classifier),
	}
}

// ParseDependencyKey parses the canonical "group:name:version[:classifier]" form.
func ParseDependencyKey(s string) (DependencyKey, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return DependencyKey{}, zerr.With(ErrInvalidDependencyKey, "key", s)
	}
	for _, p := range parts[:3] {
		if p == "" {
			return DependencyKey{}, zerr.With(ErrInvalidDependencyKey, "key", s)
		}
	}

	classifier := ""
	if len(parts) == 4 {
		if parts[3] == "" {
			return DependencyKey{}, zerr.With(ErrInvalidDependencyKey, "key", s)
		}
		classifier = parts[3]
	}

	return NewDependencyKey(parts[0], parts[1], parts[2], classifier), nil
}

// String returns the canonical "group:name:version[:classifier]" form.
func (k DependencyKey) String() string {
	s := k.Group.String() + ":" + k.Name.String() + ":" + k.Version.String()
	if !k.Classifier.IsZero() {
		s += ":" + k.Classifier.String()
	}
	return s
}

// IsZero reports whether the key has no coordinates at all.
func (k DependencyKey) IsZero() bool {
	return k == DependencyKey{}
}

// Validate checks that the key survives its canonical text form unchanged.
// A coordinate that is empty or contains ':' would be read back as a different key.
func (k DependencyKey) Validate() error {
	parsed, err := ParseDependencyKey(k.String())
	if err != nil || parsed != k {
		return zerr.With(ErrInvalidDependencyKey, "key", k.String())
	}
	return nil
}

// Compare orders keys by their canonical string form.
func (k DependencyKey) Compare(other DependencyKey) int {
	return strings.Compare(k.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (k DependencyKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DependencyKey) UnmarshalText(text []byte) error {
	parsed, err := ParseDependencyKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// LiveDependency is a dependency as currently resolved on disk for this build.
type LiveDependency struct {
	Key  DependencyKey
	File string
}

// SavedDependency is a baseline record: the checksum observed for a dependency.
type SavedDependency struct {
	Key      DependencyKey
	Checksum Checksum
}

// ValidateLiveSet checks that a live set has valid unique keys and that every entry names a file.
func ValidateLiveSet(live []LiveDependency) error {
	seen := make(map[DependencyKey]string, len(live))
	for _, dep := range live {
		if dep.Key.IsZero() {
			return zerr.With(ErrInvalidDependencyKey, "file", dep.File)
		}
		if err := dep.Key.Validate(); err != nil {
			return zerr.With(err, "file", dep.File)
		}
		if dep.File == "" {
			return zerr.With(ErrMissingArtifactFile, "key", dep.Key.String())
		}
		if prev, ok := seen[dep.Key]; ok {
			err := zerr.With(ErrDuplicateDependency, "key", dep.Key.String())
			err = zerr.With(err, "first", prev)
			return zerr.With(err, "second", dep.File)
		}
		seen[dep.Key] = dep.File
	}
	return nil
}
