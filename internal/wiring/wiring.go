// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/binpack/internal/adapters/archive"
	_ "go.trai.ch/binpack/internal/adapters/config"
	_ "go.trai.ch/binpack/internal/adapters/console"
	_ "go.trai.ch/binpack/internal/adapters/fs"
	_ "go.trai.ch/binpack/internal/adapters/locator"
	_ "go.trai.ch/binpack/internal/adapters/logger"
	_ "go.trai.ch/binpack/internal/adapters/manifest"
	_ "go.trai.ch/binpack/internal/adapters/telemetry"
	_ "go.trai.ch/binpack/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/binpack/internal/app"
	_ "go.trai.ch/binpack/internal/engine/packager"
)
