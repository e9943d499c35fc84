package domain

import "time"

// RunState is a state of a single recording run.
type RunState string

const (
	// RunStateIdle is the state before Run is called.
	RunStateIdle RunState = "idle"
	// RunStateFetchingLive is the state while the live dependency set is requested.
	RunStateFetchingLive RunState = "fetching_live"
	// RunStateComputingChecksums is the state while checksums are computed concurrently.
	RunStateComputingChecksums RunState = "computing_checksums"
	// RunStateWritingBaseline is the state while the baseline is persisted.
	RunStateWritingBaseline RunState = "writing_baseline"
	// RunStateLoggingSuccess is the state while the success outcome is reported.
	RunStateLoggingSuccess RunState = "logging_success"
	// RunStateComplete is the terminal success state.
	RunStateComplete RunState = "complete"
	// RunStateFailing is entered from any middle state when a stage fails.
	RunStateFailing RunState = "failing"
	// RunStateLoggingFailure is the state while the failure outcome is reported.
	RunStateLoggingFailure RunState = "logging_failure"
	// RunStateCrashing is the state while the build is being halted.
	RunStateCrashing RunState = "crashing"
	// RunStateFailed is the terminal failure state.
	RunStateFailed RunState = "failed"
)

// IsTerminal reports whether no further transition can happen.
func (s RunState) IsTerminal() bool {
	return s == RunStateComplete || s == RunStateFailed
}

// RunSummary describes a successful recording run.
type RunSummary struct {
	RunID       string
	Recorded    int
	Destination string
	Duration    time.Duration
}
