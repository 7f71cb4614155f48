package integrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/obtools/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/obtools/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/obtools/internal/adapters/msbuild"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/obtools/internal/adapters/obfuscar" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/obtools/internal/core/ports"
)

// NodeID is the unique identifier for the integrator Graft node.
const NodeID graft.ID = "engine.integrator"

func init() {
	graft.Register(graft.Node[Deps]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			msbuild.SynchronizerNodeID,
			obfuscar.NodeID,
			fs.InstallerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (Deps, error) {
			sync, err := graft.Dep[ports.TargetSynchronizer](ctx)
			if err != nil {
				return Deps{}, err
			}

			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return Deps{}, err
			}

			installer, err := graft.Dep[ports.ToolInstaller](ctx)
			if err != nil {
				return Deps{}, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return Deps{}, err
			}

			return Deps{
				Synchronizer: sync,
				Store:        store,
				Installer:    installer,
				Logger:       log,
			}, nil
		},
	})
}
