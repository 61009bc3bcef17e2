package packager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binpack/internal/adapters/archive"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binpack/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binpack/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binpack/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binpack/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binpack/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "engine.packager"

func init() {
	graft.Register(graft.Node[*Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.CollectorNodeID,
			fs.HasherNodeID,
			archive.NodeID,
			manifest.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Packager, error) {
			collector, err := graft.Dep[ports.ArtifactCollector](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewPackager(collector, archiver, hasher, store, tracer, log), nil
		},
	})
}
