package msbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/obtools/internal/adapters/logger"
	"go.trai.ch/obtools/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the project loader node.
	LoaderNodeID graft.ID = "adapter.msbuild.loader"
	// LocatorNodeID is the unique identifier for the project locator node.
	LocatorNodeID graft.ID = "adapter.msbuild.locator"
	// RefresherNodeID is the unique identifier for the project refresher node.
	RefresherNodeID graft.ID = "adapter.msbuild.refresher"
	// SynchronizerNodeID is the unique identifier for the target synchronizer node.
	SynchronizerNodeID graft.ID = "adapter.msbuild.synchronizer"
)

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLoader, error) {
			return NewProjectLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLocator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectRefresher]{
		ID:        RefresherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectRefresher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogRefresher(log), nil
		},
	})

	graft.Register(graft.Node[ports.TargetSynchronizer]{
		ID:        SynchronizerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RefresherNodeID},
		Run: func(ctx context.Context) (ports.TargetSynchronizer, error) {
			refresher, err := graft.Dep[ports.ProjectRefresher](ctx)
			if err != nil {
				return nil, err
			}
			return NewSynchronizer(refresher), nil
		},
	})
}
