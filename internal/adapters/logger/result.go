package logger

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
)

// ResultLogger reports recording outcomes through a ports.Logger.
type ResultLogger struct {
	logger ports.Logger
}

// NewResultLogger creates a ResultLogger on top of logger.
func NewResultLogger(logger ports.Logger) *ResultLogger {
	return &ResultLogger{logger: logger}
}

// LogSuccess reports the number of recorded dependencies and where they were written.
func (r *ResultLogger) LogSuccess(_ context.Context, summary domain.RunSummary) error {
	noun := "dependencies"
	if summary.Recorded == 1 {
		noun = "dependency"
	}
	r.logger.Success(fmt.Sprintf("Recorded %d %s to %s (run %s, %s)",
		summary.Recorded, noun, summary.Destination, shortID(summary.RunID),
		summary.Duration.Round(time.Millisecond)))
	return nil
}

// LogFailure reports the failure together with its cause chain.
func (r *ResultLogger) LogFailure(_ context.Context, cause error) error {
	r.logger.Error(cause)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
