// Package fs provides filesystem adapters for collecting and hashing
// build artifacts.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCollector = (*Collector)(nil)

// Collector scans a build output directory for packageable artifacts.
// The scan is deliberately non-recursive: only files directly inside the
// output directory are considered.
type Collector struct{}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect returns the files in outputDir whose extension matches one of
// extensions. Matching is case-insensitive. The result is sorted by
// filename because os.ReadDir guarantees that order.
func (c *Collector) Collect(outputDir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrOutputDirMissing, "path", outputDir)
		}
		return nil, zerr.With(errors.Join(domain.ErrCollectFailed, err), "path", outputDir)
	}

	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = struct{}{}
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := wanted[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		files = append(files, filepath.Join(outputDir, entry.Name()))
	}

	return files, nil
}
