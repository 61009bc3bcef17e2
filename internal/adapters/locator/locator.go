// Package locator resolves user-supplied paths to a single project file.
package locator

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLocator = (*Locator)(nil)

// Locator implements ports.ProjectLocator against the real filesystem.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate resolves path to the absolute path of a project file. A path
// naming a file is returned as-is. For a directory, exactly one entry
// matching the patterns must exist; none is ErrProjectNotFound and more
// than one is ErrAmbiguousProject.
func (l *Locator) Locate(path string, patterns []string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(domain.ErrProjectNotFound, "path", path)
	}

	if !info.IsDir() {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrProjectNotFound, err.Error()), "path", path)
		}
		return abs, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrProjectNotFound, err.Error()), "path", path)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesAny(entry.Name(), patterns) {
			matches = append(matches, entry.Name())
		}
	}

	switch len(matches) {
	case 0:
		return "", zerr.With(domain.ErrProjectNotFound, "path", path)
	case 1:
		abs, err := filepath.Abs(filepath.Join(path, matches[0]))
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrProjectNotFound, err.Error()), "path", path)
		}
		return abs, nil
	default:
		return "", zerr.With(domain.ErrAmbiguousProject, "candidates", strings.Join(matches, ", "))
	}
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
