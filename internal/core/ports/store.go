package ports

import "go.trai.ch/binpack/internal/core/domain"

// ManifestStore persists the PackageInfo record of the last successful run.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the manifest for a project name.
	// Returns nil, nil if not found.
	Get(root, projectName string) (*domain.PackageInfo, error)

	// Put stores the manifest under the given project root.
	Put(root string, info domain.PackageInfo) error
}
