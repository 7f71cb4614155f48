package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/obtools/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/obtools/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/obtools/internal/adapters/msbuild"            //nolint:depguard // Wired in app layer
	"go.trai.ch/obtools/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/obtools/internal/engine/integrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			msbuild.LocatorNodeID,
			msbuild.LoaderNodeID,
			config.NodeID,
			progrock.NodeID,
			logger.NodeID,
			integrator.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.ProjectLocator](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	deps, err := graft.Dep[integrator.Deps](ctx)
	if err != nil {
		return nil, err
	}

	return New(locator, loader, settings, telemetry, log, deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
