// Package recorder implements the dependency recording pipeline.
package recorder

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TaskRunner records the checksums of all live dependencies as the new baseline.
type TaskRunner struct {
	saved     ports.SavedDependenciesRepository
	live      ports.LiveDependenciesRepository
	checksums ports.ChecksumGenerator
	logger    ports.ResultLogger
	crasher   ports.Crasher
	tracer    ports.Tracer

	mu    sync.RWMutex
	state domain.RunState
}

// NewTaskRunner creates a new TaskRunner.
func NewTaskRunner(
	saved ports.SavedDependenciesRepository,
	live ports.LiveDependenciesRepository,
	checksums ports.ChecksumGenerator,
	logger ports.ResultLogger,
	crasher ports.Crasher,
	tracer ports.Tracer,
) *TaskRunner {
	return &TaskRunner{
		saved:     saved,
		live:      live,
		checksums: checksums,
		logger:    logger,
		crasher:   crasher,
		tracer:    tracer,
		state:     domain.RunStateIdle,
	}
}

// State returns the current state of the runner.
func (r *TaskRunner) State() domain.RunState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Run executes one recording cycle.
//
// On success the baseline has been written and the success logged. On failure nothing was
// written, the failure has been logged, the build has been halted, and the returned error
// matches both domain.ErrBuildHalted and the original cause.
func (r *TaskRunner) Run(ctx context.Context) error {
	started := time.Now()
	runID := uuid.NewString()

	ctx, span := r.tracer.Start(ctx, "recorder.run")
	defer span.End()
	span.SetAttribute("run.id", runID)

	recorded, err := r.record(ctx, span)
	if err != nil {
		return r.fail(ctx, span, err)
	}

	r.transition(span, domain.RunStateLoggingSuccess)
	summary := domain.RunSummary{
		RunID:       runID,
		Recorded:    recorded,
		Destination: r.saved.Describe(),
		Duration:    time.Since(started),
	}
	if err := r.logger.LogSuccess(ctx, summary); err != nil {
		// The baseline is already durable; a reporting failure does not undo it.
		span.RecordError(err)
	}

	r.transition(span, domain.RunStateComplete)
	return nil
}

// record runs the fetch, checksum and write stages and returns the number of entries written.
func (r *TaskRunner) record(ctx context.Context, span ports.Span) (int, error) {
	r.transition(span, domain.RunStateFetchingLive)
	live, err := r.fetchLive(ctx)
	if err != nil {
		return 0, err
	}

	r.transition(span, domain.RunStateComputingChecksums)
	baseline, err := r.computeChecksums(ctx, live)
	if err != nil {
		return 0, err
	}

	r.transition(span, domain.RunStateWritingBaseline)
	if err := r.writeBaseline(ctx, baseline); err != nil {
		return 0, err
	}

	return baseline.Len(), nil
}

func (r *TaskRunner) fetchLive(ctx context.Context) ([]domain.LiveDependency, error) {
	ctx, span := r.tracer.Start(ctx, "recorder.fetch")
	defer span.End()

	live, err := r.live.Get(ctx)
	if err == nil {
		err = domain.ValidateLiveSet(live)
	}
	if err != nil {
		err = zerr.Wrap(err, domain.ErrResolutionFailed.Error())
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("dependencies", len(live))
	return live, nil
}

// computeChecksums fans out one checksum computation per live dependency and waits for all.
// The first failure cancels the shared context and discards every other result.
func (r *TaskRunner) computeChecksums(ctx context.Context, live []domain.LiveDependency) (domain.Baseline, error) {
	ctx, span := r.tracer.Start(ctx, "recorder.checksum")
	defer span.End()

	saved := make([]domain.SavedDependency, len(live))

	g, gctx := errgroup.WithContext(ctx)
	for i, dep := range live {
		g.Go(func() error {
			checksum, err := r.checksums.GenerateChecksum(gctx, dep.File)
			if err != nil {
				err = zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
				err = zerr.With(err, "key", dep.Key.String())
				return zerr.With(err, "file", dep.File)
			}
			saved[i] = domain.SavedDependency{Key: dep.Key, Checksum: checksum}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return domain.Baseline{}, err
	}

	baseline, err := domain.NewBaseline(saved...)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
		span.RecordError(err)
		return domain.Baseline{}, err
	}
	return baseline, nil
}

func (r *TaskRunner) writeBaseline(ctx context.Context, baseline domain.Baseline) error {
	ctx, span := r.tracer.Start(ctx, "recorder.write")
	defer span.End()
	span.SetAttribute("entries", baseline.Len())

	if err := r.saved.Set(ctx, baseline); err != nil {
		err = zerr.Wrap(err, domain.ErrPersistenceFailed.Error())
		span.RecordError(err)
		return err
	}
	return nil
}

// fail logs the failure, then halts the build. Both calls happen even if ctx is already
// cancelled, since cancellation is itself a failure that must be reported.
func (r *TaskRunner) fail(ctx context.Context, span ports.Span, cause error) error {
	ctx = context.WithoutCancel(ctx)

	r.transition(span, domain.RunStateFailing)
	span.RecordError(cause)

	r.transition(span, domain.RunStateLoggingFailure)
	if err := r.logger.LogFailure(ctx, cause); err != nil {
		span.RecordError(err)
	}

	r.transition(span, domain.RunStateCrashing)
	halted := r.crasher.FailBuild(ctx, cause)
	if halted == nil {
		halted = domain.ErrBuildHalted
	}
	if !errors.Is(halted, cause) {
		halted = errors.Join(halted, cause)
	}

	r.transition(span, domain.RunStateFailed)
	return halted
}

func (r *TaskRunner) transition(span ports.Span, next domain.RunState) {
	r.mu.Lock()
	r.state = next
	r.mu.Unlock()
	span.AddEvent(string(next))
}
