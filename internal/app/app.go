// Package app implements the application layer for retrial.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.trai.ch/retrial/internal/adapters/baseline"
	"go.trai.ch/retrial/internal/adapters/checksum"
	"go.trai.ch/retrial/internal/adapters/live"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/retrial/internal/engine/recorder"
	"go.trai.ch/zerr"
)

// Output formats of Show.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type (
	// StoreOpener opens the baseline store described by a configuration.
	StoreOpener func(ctx context.Context, cfg *domain.Config) (baseline.Store, error)
	// LiveOpener builds the live dependency repository described by a configuration.
	LiveOpener func(cfg *domain.Config) (ports.LiveDependenciesRepository, error)
	// ChecksumFactory builds the checksum generator described by a configuration.
	ChecksumFactory func(cfg *domain.Config) (ports.ChecksumGenerator, error)
)

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	results      ports.ResultLogger
	crasher      ports.Crasher
	tracer       ports.Tracer

	openStore    StoreOpener
	openLive     LiveOpener
	newChecksums ChecksumFactory
}

// New creates a new App instance backed by the configured adapters.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	results ports.ResultLogger,
	crasher ports.Crasher,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		results:      results,
		crasher:      crasher,
		tracer:       tracer,
		openStore:    baseline.Open,
		openLive: func(cfg *domain.Config) (ports.LiveDependenciesRepository, error) {
			return live.FromConfig(cfg)
		},
		newChecksums: func(cfg *domain.Config) (ports.ChecksumGenerator, error) {
			return checksum.NewGenerator(cfg.Checksum.Algorithm, cfg.Checksum.Concurrency)
		},
	}
}

// WithStoreOpener replaces how the baseline store is opened.
func (a *App) WithStoreOpener(open StoreOpener) *App {
	a.openStore = open
	return a
}

// WithLiveOpener replaces how the live dependency repository is built.
func (a *App) WithLiveOpener(open LiveOpener) *App {
	a.openLive = open
	return a
}

// WithChecksumFactory replaces how the checksum generator is built.
func (a *App) WithChecksumFactory(factory ChecksumFactory) *App {
	a.newChecksums = factory
	return a
}

// RecordOptions configuration for the Record method.
type RecordOptions struct {
	// Cwd is where configuration discovery starts. Empty means the process working directory.
	Cwd string
	// ConfigPath is an explicit config file, skipping discovery.
	ConfigPath string
	// JSON switches the logger to JSON output.
	JSON bool
}

// Record runs one recording cycle: the checksums of every live dependency become the new baseline.
// A failed run has already been logged and escalated; the error matches domain.ErrBuildHalted.
func (a *App) Record(ctx context.Context, opts RecordOptions) error {
	if opts.JSON {
		if l, ok := a.logger.(jsonLogger); ok {
			l.SetJSON(true)
		}
	}

	cfg, err := a.loadConfig(opts.Cwd, opts.ConfigPath)
	if err != nil {
		return err
	}

	liveRepo, err := a.openLive(cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to configure dependency sources")
	}

	checksums, err := a.newChecksums(cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to configure checksum generator")
	}

	store, err := a.openStore(ctx, cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to open baseline store")
	}
	defer a.closeStore(store)

	runner := recorder.NewTaskRunner(store, liveRepo, checksums, a.results, a.crasher, a.tracer)
	return runner.Run(ctx)
}

// ShowOptions configuration for the Show method.
type ShowOptions struct {
	Cwd        string
	ConfigPath string
	// Format is FormatText (default) or FormatJSON.
	Format string
}

type showEntry struct {
	Key      string `json:"key"`
	Checksum string `json:"checksum"`
}

// Show writes the saved baseline to out, sorted by key.
func (a *App) Show(ctx context.Context, opts ShowOptions, out io.Writer) error {
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return zerr.With(domain.ErrUnknownOutputFormat, "format", format)
	}

	cfg, err := a.loadConfig(opts.Cwd, opts.ConfigPath)
	if err != nil {
		return err
	}

	store, err := a.openStore(ctx, cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to open baseline store")
	}
	defer a.closeStore(store)

	saved, err := store.Get(ctx)
	if err != nil {
		return zerr.With(err, "baseline", store.Describe())
	}

	entries := saved.Entries()
	if format == FormatJSON {
		rows := make([]showEntry, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, showEntry{Key: e.Key.String(), Checksum: e.Checksum.String()})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(out, "%s %s\n", e.Key, e.Checksum); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) loadConfig(cwd, path string) (*domain.Config, error) {
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
	}

	cfg, err := a.configLoader.Load(cwd, path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) closeStore(store baseline.Store) {
	if err := store.Close(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to close baseline store %s: %v", store.Describe(), err))
	}
}
