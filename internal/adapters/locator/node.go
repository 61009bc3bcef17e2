package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binpack/internal/core/ports"
)

// NodeID is the unique identifier for the project locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.ProjectLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLocator, error) {
			return NewLocator(), nil
		},
	})
}
