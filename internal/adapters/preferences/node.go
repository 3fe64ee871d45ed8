package preferences

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winbuild/internal/core/ports"
)

// NodeID is the unique identifier for the preference loader Graft node.
const NodeID graft.ID = "adapter.preferences"

func init() {
	graft.Register(graft.Node[ports.PreferenceLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PreferenceLoader, error) {
			return NewLoader(), nil
		},
	})
}
