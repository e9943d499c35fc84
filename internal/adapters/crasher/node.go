package crasher

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/retrial/internal/core/ports"
)

// NodeID is the unique identifier for the crasher Graft node.
const NodeID graft.ID = "adapter.crasher"

func init() {
	graft.Register(graft.Node[ports.Crasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Crasher, error) {
			return New(os.Stdout, os.Getenv), nil
		},
	})
}
