// Package manifest persists package manifests as JSON files under the
// project's .binpack directory.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using one JSON file per project,
// stored under <root>/.binpack/.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the manifest for a project name. Returns nil, nil when no
// manifest has been written yet.
func (s *Store) Get(root, projectName string) (*domain.PackageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := manifestPath(root, projectName)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	var info domain.PackageInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestUnmarshalFailed, err.Error()), "path", path)
	}

	return &info, nil
}

// Put stores the manifest under the given project root, creating the
// .binpack directory on first use.
func (s *Store) Put(root string, info domain.PackageInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrManifestMarshalFailed, err.Error())
	}

	dir := filepath.Join(root, domain.BinpackDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", dir)
	}

	path := manifestPath(root, info.ProjectName)
	//nolint:gosec // Path is derived from the project root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", path)
	}

	return nil
}

func manifestPath(root, projectName string) string {
	return filepath.Join(root, domain.BinpackDirName, projectName+".json")
}
