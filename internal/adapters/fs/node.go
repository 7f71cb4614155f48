package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/obtools/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// InstallerNodeID is the unique identifier for the tool installer node.
	InstallerNodeID graft.ID = "adapter.fs.installer"
)

func init() {
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.ToolInstaller, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(hasher), nil
		},
	})
}
