// Package config provides the configuration loader for retrial.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// EnvPrefix is the prefix of environment variables overriding configuration keys.
// Nested keys use underscores, e.g. RETRIAL_BASELINE_BACKEND.
const EnvPrefix = "RETRIAL"

// DefaultSQLiteDSN is the sqlite database used when the sql backend has no dsn.
const DefaultSQLiteDSN = ".retrial/baseline.db"

// Loader implements ports.ConfigLoader on top of viper.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration for cwd. With an explicit path the file must exist.
// Without one, retrial.yaml is searched from cwd upwards; if none is found the defaults
// apply with cwd as root.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	configPath, err := l.locate(cwd, path)
	if err != nil {
		return nil, err
	}

	v := newViper()
	root := cwd
	if configPath != "" {
		if err := readConfig(v, configPath); err != nil {
			return nil, err
		}
		root = filepath.Dir(configPath)
	} else {
		l.Logger.Warn(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
	}

	var dto fileDTO
	if err := v.UnmarshalExact(&dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	if !v.IsSet("sources") {
		dto.Sources = []sourceDTO{{Type: domain.SourceManifest, Path: domain.ManifestFileName}}
	}

	cfg, err := toDomain(&dto, resolveRoot(root, dto.Root))
	if err != nil {
		if configPath != "" {
			err = zerr.With(err, "path", configPath)
		}
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) locate(cwd, path string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return path, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("version", "1")
	v.SetDefault("root", "")
	v.SetDefault("checksum.algorithm", string(domain.SHA512))
	v.SetDefault("checksum.concurrency", 0)
	v.SetDefault("baseline.backend", domain.BackendFile)
	v.SetDefault("baseline.path", domain.DefaultBaselinePath())
	v.SetDefault("baseline.format", domain.FormatJSON)
	v.SetDefault("baseline.driver", domain.DriverSQLite)
	v.SetDefault("baseline.dsn", "")
	v.SetDefault("baseline.bucket", "")
	v.SetDefault("baseline.key", "retrial/baseline.json")
	v.SetDefault("baseline.region", "us-east-1")
	v.SetDefault("baseline.endpoint", "")
	v.SetDefault("baseline.accessKey", "")
	v.SetDefault("baseline.secretKey", "")
	v.SetDefault("baseline.url", "redis://localhost:6379/0")
	v.SetDefault("baseline.redisKey", "retrial:baseline")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func readConfig(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return nil
}

// resolveRoot returns the project root: configDir, or the configured root relative to it.
func resolveRoot(configDir, root string) string {
	if root == "" {
		return configDir
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(configDir, root)
}
