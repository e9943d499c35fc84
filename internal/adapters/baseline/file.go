package baseline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SavedDependenciesRepository = (*FileStore)(nil)

// FileStore keeps the baseline in a single sealed document on disk.
type FileStore struct {
	path  string
	codec codec
}

// NewFileStore creates a FileStore at path using the given format (json, yaml or cbor).
func NewFileStore(path, format string) (*FileStore, error) {
	c, err := codecFor(format)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, codec: c}, nil
}

// Describe returns the baseline file path.
func (s *FileStore) Describe() string {
	return s.path
}

// Close implements io.Closer.
func (s *FileStore) Close() error {
	return nil
}

// Get reads the baseline. A missing file yields an empty baseline.
func (s *FileStore) Get(ctx context.Context) (domain.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return domain.Baseline{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Baseline{}, nil
		}
		return domain.Baseline{}, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	doc, err := s.codec.decode(data)
	if err != nil {
		return domain.Baseline{}, zerr.With(err, "path", s.path)
	}

	b, err := doc.baseline()
	if err != nil {
		return domain.Baseline{}, zerr.With(err, "path", s.path)
	}
	return b, nil
}

// Set writes the baseline to a temporary file in the target directory and renames it
// over the previous baseline.
func (s *FileStore) Set(ctx context.Context, b domain.Baseline) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.codec.encode(newDocument(b))
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	if err := writeAtomic(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}

func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
