package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Dependency coordinates repeat heavily across a build (groups, versions), so they are interned.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
// The empty string maps to the zero value so that equality stays consistent.
func NewInternedString(s string) InternedString {
	if s == "" {
		return InternedString{}
	}
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
// The zero InternedString yields the empty string.
func (is InternedString) String() string {
	if is.h == (unique.Handle[string]{}) {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the string is empty.
func (is InternedString) IsZero() bool {
	return is.String() == ""
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	*is = NewInternedString(string(text))
	return nil
}
