package ports

import "go.trai.ch/binpack/internal/core/domain"

// ConfigLoader loads the effective settings for a project directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads binpack.yaml from the given project directory, falling
	// back to defaults when the file does not exist.
	Load(projectDir string) (domain.Settings, error)
}
