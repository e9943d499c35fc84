package domain

import (
	"encoding/hex"
	"strings"

	"go.trai.ch/zerr"
)

// Algorithm names a digest algorithm supported for checksums.
type Algorithm string

const (
	// SHA512 is the default checksum algorithm.
	SHA512 Algorithm = "sha512"
	// SHA256 is the alternative, shorter checksum algorithm.
	SHA256 Algorithm = "sha256"
)

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA512:
		return 64
	case SHA256:
		return 32
	default:
		return 0
	}
}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(s))
	if a.Size() == 0 {
		return "", zerr.With(ErrUnknownAlgorithm, "algorithm", s)
	}
	return a, nil
}

// Checksum is an immutable cryptographic digest of an artifact's content.
// Two checksums are equal (==) iff algorithm and digest bytes are equal.
type Checksum struct {
	algorithm Algorithm
	digest    string
}

// NewChecksum creates a checksum from a raw digest.
// The digest length must match the algorithm.
func NewChecksum(algorithm Algorithm, digest []byte) (Checksum, error) {
	size := algorithm.Size()
	if size == 0 {
		return Checksum{}, zerr.With(ErrUnknownAlgorithm, "algorithm", string(algorithm))
	}
	if len(digest) != size {
		err := zerr.With(ErrInvalidChecksum, "algorithm", string(algorithm))
		return Checksum{}, zerr.With(err, "length", len(digest))
	}
	return Checksum{algorithm: algorithm, digest: string(digest)}, nil
}

// ParseChecksum parses the canonical "<algorithm>:<hex>" form.
func ParseChecksum(s string) (Checksum, error) {
	alg, hexDigest, ok := strings.Cut(s, ":")
	if !ok {
		return Checksum{}, zerr.With(ErrInvalidChecksum, "checksum", s)
	}

	algorithm, err := ParseAlgorithm(alg)
	if err != nil {
		return Checksum{}, err
	}

	digest, err := hex.DecodeString(hexDigest)
	if err != nil {
		return Checksum{}, zerr.With(zerr.Wrap(err, ErrInvalidChecksum.Error()), "checksum", s)
	}

	return NewChecksum(algorithm, digest)
}

// Algorithm returns the digest algorithm.
func (c Checksum) Algorithm() Algorithm {
	return c.algorithm
}

// Digest returns a copy of the raw digest bytes.
func (c Checksum) Digest() []byte {
	return []byte(c.digest)
}

// Hex returns the lowercase hex encoding of the digest.
func (c Checksum) Hex() string {
	return hex.EncodeToString([]byte(c.digest))
}

// IsZero reports whether the checksum is unset.
func (c Checksum) IsZero() bool {
	return c == Checksum{}
}

// Equal reports whether two checksums have the same algorithm and digest.
func (c Checksum) Equal(other Checksum) bool {
	return c == other
}

// String returns the canonical "<algorithm>:<hex>" form.
func (c Checksum) String() string {
	if c.IsZero() {
		return ""
	}
	return string(c.algorithm) + ":" + c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Checksum) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, ErrInvalidChecksum
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Checksum) UnmarshalText(text []byte) error {
	parsed, err := ParseChecksum(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
