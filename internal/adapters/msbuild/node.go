package msbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winbuild/internal/adapters/logger"
	"go.trai.ch/winbuild/internal/adapters/shell"
	"go.trai.ch/winbuild/internal/core/ports"
)

const (
	// ProbeNodeID is the unique identifier for the toolchain probe Graft node.
	ProbeNodeID graft.ID = "adapter.msbuild.probe"
	// BuilderNodeID is the unique identifier for the native builder Graft node.
	BuilderNodeID graft.ID = "adapter.msbuild.builder"
)

func init() {
	graft.Register(graft.Node[ports.ToolchainProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainProbe, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(runner, log), nil
		},
	})

	graft.Register(graft.Node[ports.NativeBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.NativeBuilder, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner), nil
		},
	})
}
