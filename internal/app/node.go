package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retrial/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/retrial/internal/adapters/crasher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/retrial/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/retrial/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/retrial/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			logger.ResultNodeID,
			crasher.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	results, err := graft.Dep[ports.ResultLogger](ctx)
	if err != nil {
		return nil, err
	}

	crash, err := graft.Dep[ports.Crasher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, results, crash, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: a, Logger: log}, nil
}
