package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/binpack/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/binpack/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// TraceEnvVar enables span reporting when set to any non-empty value.
const TraceEnvVar = "BINPACK_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(TraceEnvVar) == "" {
				return NewNoOpTracer(), nil
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			SetupProvider(NewBridge(log))
			return NewOTelTracer("binpack"), nil
		},
	})
}
