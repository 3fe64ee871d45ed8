package executor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/winbuild/internal/adapters/msbuild"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/winbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/winbuild/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			msbuild.BuilderNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Executor, error) {
			builder, err := graft.Dep[ports.NativeBuilder](ctx)
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

			return New(builder, telemetry, log), nil
		},
	})
}
