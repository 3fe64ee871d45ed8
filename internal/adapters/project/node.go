package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winbuild/internal/core/ports"
)

// NodeID is the unique identifier for the project inspector Graft node.
const NodeID graft.ID = "adapter.project"

func init() {
	graft.Register(graft.Node[ports.ProjectInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectInspector, error) {
			return NewInspector(), nil
		},
	})
}
