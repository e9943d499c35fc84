package config

import (
	"fmt"
	"strings"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/zerr"
)

func toDomain(dto *fileDTO, root string) (*domain.Config, error) {
	if dto.Version != "1" {
		return nil, zerr.With(zerr.With(domain.ErrInvalidConfig, "field", "version"), "version", dto.Version)
	}

	algorithm, err := domain.ParseAlgorithm(dto.Checksum.Algorithm)
	if err != nil {
		return nil, zerr.With(err, "field", "checksum.algorithm")
	}
	if dto.Checksum.Concurrency < 0 {
		return nil, zerr.With(domain.ErrInvalidConfig, "field", "checksum.concurrency")
	}

	sources, err := toSources(dto.Sources)
	if err != nil {
		return nil, err
	}

	baseline, err := toBaseline(&dto.Baseline)
	if err != nil {
		return nil, err
	}

	return &domain.Config{
		Root: root,
		Checksum: domain.ChecksumConfig{
			Algorithm:   algorithm,
			Concurrency: dto.Checksum.Concurrency,
		},
		Sources:  sources,
		Baseline: baseline,
	}, nil
}

func toSources(dtos []sourceDTO) ([]domain.SourceConfig, error) {
	sources := make([]domain.SourceConfig, 0, len(dtos))
	for i, s := range dtos {
		switch s.Type {
		case domain.SourceManifest, domain.SourceGoMod, domain.SourceDir:
		default:
			return nil, zerr.With(zerr.With(domain.ErrUnknownSourceType, "type", s.Type), "source", i)
		}
		if strings.ContainsRune(s.Group, ':') {
			err := zerr.With(domain.ErrInvalidConfig, "field", fmt.Sprintf("sources[%d].group", i))
			return nil, zerr.With(err, "group", s.Group)
		}
		sources = append(sources, domain.SourceConfig(s))
	}
	return sources, nil
}

func toBaseline(dto *baselineDTO) (domain.BaselineConfig, error) {
	cfg := domain.BaselineConfig(*dto)

	switch cfg.Backend {
	case domain.BackendFile:
		switch cfg.Format {
		case domain.FormatJSON, domain.FormatYAML, domain.FormatCBOR:
		default:
			return cfg, zerr.With(domain.ErrUnknownFormat, "format", cfg.Format)
		}
	case domain.BackendSQL:
		switch cfg.Driver {
		case domain.DriverSQLite:
			if cfg.DSN == "" {
				cfg.DSN = DefaultSQLiteDSN
			}
		case domain.DriverPostgres:
			if cfg.DSN == "" {
				return cfg, zerr.With(domain.ErrInvalidConfig, "field", "baseline.dsn")
			}
		default:
			return cfg, zerr.With(domain.ErrUnknownDriver, "driver", cfg.Driver)
		}
	case domain.BackendS3:
		if cfg.Bucket == "" {
			return cfg, zerr.With(domain.ErrInvalidConfig, "field", "baseline.bucket")
		}
	case domain.BackendRedis:
		if cfg.URL == "" {
			return cfg, zerr.With(domain.ErrInvalidConfig, "field", "baseline.url")
		}
	default:
		return cfg, zerr.With(domain.ErrUnknownBackend, "backend", cfg.Backend)
	}
	return cfg, nil
}
