package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/retrial/internal/adapters/logger"
	"go.trai.ch/retrial/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// TraceEnv enables span reporting when set to a non-empty value.
const TraceEnv = "RETRIAL_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(TraceEnv) == "" {
				return NewNoOpTracer(), nil
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracerFromProvider(NewProvider(log), InstrumentationName), nil
		},
	})
}
