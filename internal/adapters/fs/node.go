package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binpack/internal/core/ports"
)

const (
	CollectorNodeID graft.ID = "adapter.fs.collector"
	HasherNodeID    graft.ID = "adapter.fs.hasher"
)

func init() {
	// Collector Node
	graft.Register(graft.Node[ports.ArtifactCollector]{
		ID:        CollectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactCollector, error) {
			return NewCollector(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
