package ports

import "context"

// Crasher halts the enclosing build after an unrecoverable failure.
//
//go:generate mockgen -source=crasher.go -destination=mocks/mock_crasher.go -package=mocks
type Crasher interface {
	// FailBuild signals the build to terminate with a failure status.
	// The returned error carries domain.ErrBuildHalted and must be propagated to the caller.
	FailBuild(ctx context.Context, cause error) error
}
