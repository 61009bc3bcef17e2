// Package config provides the optional per-project configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file next to
// the project file. The file is optional; defaults apply when it is absent.
type FileConfigLoader struct {
	Filename string
}

// NewFileConfigLoader creates a loader for the standard config filename.
func NewFileConfigLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName}
}

// Load reads the configuration from the given project directory. Values
// not present in the file keep their defaults.
func (l *FileConfigLoader) Load(projectDir string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(projectDir, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the project dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if file.Configuration != "" {
		settings.Configuration = file.Configuration
	}
	if len(file.Extensions) > 0 {
		settings.Extensions = normalizeExtensions(file.Extensions)
	}
	if len(file.ProjectPatterns) > 0 {
		settings.ProjectPatterns = file.ProjectPatterns
	}

	return settings, nil
}

// normalizeExtensions lowercases extensions and ensures a leading dot, so
// "DLL" and ".dll" configure the same filter.
func normalizeExtensions(exts []string) []string {
	res := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		res = append(res, ext)
	}
	return res
}
