package baseline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store is a baseline repository holding backend resources until closed.
type Store interface {
	ports.SavedDependenciesRepository
	io.Closer
}

// Open creates the store selected by cfg.Baseline. Relative file paths and sqlite DSNs
// are resolved against cfg.Root.
func Open(ctx context.Context, cfg *domain.Config) (Store, error) {
	bc := cfg.Baseline
	switch bc.Backend {
	case domain.BackendFile, "":
		path := bc.Path
		if path == "" {
			path = domain.DefaultBaselinePath()
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Root, path)
		}
		return NewFileStore(path, bc.Format)
	case domain.BackendSQL:
		dsn := bc.DSN
		if (bc.Driver == domain.DriverSQLite || bc.Driver == "") && dsn != "" && !isURI(dsn) {
			if !filepath.IsAbs(dsn) {
				dsn = filepath.Join(cfg.Root, dsn)
			}
			// sqlite creates the database file but not its directory.
			if err := os.MkdirAll(filepath.Dir(dsn), domain.DirPerm); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", filepath.Dir(dsn))
			}
		}
		return OpenSQLStore(ctx, bc.Driver, dsn)
	case domain.BackendS3:
		return OpenS3Store(ctx, S3Config{
			Bucket:   bc.Bucket,
			Key:      bc.Key,
			Region:   bc.Region,
			Endpoint: bc.Endpoint,

			AccessKeyID:     bc.AccessKey,
			SecretAccessKey: bc.SecretKey,
		})
	case domain.BackendRedis:
		return OpenRedisStore(ctx, bc.URL, bc.RedisKey)
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", bc.Backend)
	}
}

func isURI(dsn string) bool {
	return strings.HasPrefix(dsn, "file:")
}
