// Package baseline persists the dependency baseline in one of several backends.
//
// Every backend replaces the whole baseline in a single atomic step, so a reader
// observes either the previous baseline or the new one, never a mixture.
package baseline

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	documentVersion = 1
	sealPrefix      = "xxh64:"
)

// documentDTO is the serialized form of a baseline shared by the file and s3 backends.
type documentDTO struct {
	Version int        `json:"version" yaml:"version" cbor:"version"`
	Seal    string     `json:"seal" yaml:"seal" cbor:"seal"`
	Entries []entryDTO `json:"entries" yaml:"entries" cbor:"entries"`
}

type entryDTO struct {
	Key      string `json:"key" yaml:"key" cbor:"key"`
	Checksum string `json:"checksum" yaml:"checksum" cbor:"checksum"`
}

func toEntries(b domain.Baseline) []entryDTO {
	saved := b.Entries()
	entries := make([]entryDTO, 0, len(saved))
	for _, dep := range saved {
		entries = append(entries, entryDTO{Key: dep.Key.String(), Checksum: dep.Checksum.String()})
	}
	return entries
}

func fromEntries(entries []entryDTO) (domain.Baseline, error) {
	saved := make([]domain.SavedDependency, 0, len(entries))
	for _, e := range entries {
		key, err := domain.ParseDependencyKey(e.Key)
		if err != nil {
			return domain.Baseline{}, err
		}
		checksum, err := domain.ParseChecksum(e.Checksum)
		if err != nil {
			return domain.Baseline{}, zerr.With(err, "key", e.Key)
		}
		saved = append(saved, domain.SavedDependency{Key: key, Checksum: checksum})
	}
	return domain.NewBaseline(saved...)
}

func newDocument(b domain.Baseline) documentDTO {
	entries := toEntries(b)
	return documentDTO{
		Version: documentVersion,
		Seal:    seal(entries),
		Entries: entries,
	}
}

// baseline verifies the document and converts it back to a domain.Baseline.
func (d documentDTO) baseline() (domain.Baseline, error) {
	if d.Version != documentVersion {
		return domain.Baseline{}, zerr.With(domain.ErrStoreUnsupportedVersion, "version", d.Version)
	}
	if got := seal(d.Entries); got != d.Seal {
		err := zerr.With(domain.ErrStoreSealMismatch, "expected", d.Seal)
		return domain.Baseline{}, zerr.With(err, "actual", got)
	}
	b, err := fromEntries(d.Entries)
	if err != nil {
		return domain.Baseline{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return b, nil
}

// seal fingerprints the entries in order. It detects edits and truncation, not tampering.
func seal(entries []entryDTO) string {
	h := xxhash.New()
	_, _ = h.WriteString(strconv.Itoa(len(entries)))
	_, _ = h.Write([]byte{0})
	for _, e := range entries {
		_, _ = h.WriteString(e.Key)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(e.Checksum)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%s%016x", sealPrefix, h.Sum64())
}
