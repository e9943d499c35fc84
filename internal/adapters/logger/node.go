package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retrial/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// ResultNodeID is the unique identifier for the result logger Graft node.
	ResultNodeID graft.ID = "adapter.result_logger"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.ResultLogger]{
		ID:        ResultNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.ResultLogger, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResultLogger(log), nil
		},
	})
}
