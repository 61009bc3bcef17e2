package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binpack/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/binpack/internal/adapters/console"  //nolint:depguard // Wired in app layer
	"go.trai.ch/binpack/internal/adapters/locator"  //nolint:depguard // Wired in app layer
	"go.trai.ch/binpack/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/binpack/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/binpack/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/binpack/internal/engine/packager"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			locator.NodeID,
			config.NodeID,
			packager.NodeID,
			manifest.NodeID,
			console.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			console.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loc, err := graft.Dep[ports.ProjectLocator](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	pack, err := graft.Dep[*packager.Packager](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loc, loader, pack, store, reporter, watch, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      a,
		Logger:   log,
		Reporter: reporter,
	}, nil
}
