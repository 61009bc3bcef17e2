package domain

import (
	"path/filepath"
	"strings"
)

// PackageRequest is the derived value object for one packaging invocation.
// All paths are computed from the project file path once and never mutated.
type PackageRequest struct {
	// ProjectPath is the absolute path to the project file.
	ProjectPath string
	// ProjectName is the project file's basename without extension.
	ProjectName string
	// OutputDir is <projectDir>/bin/<configuration>.
	OutputDir string
	// ArchivePath is <OutputDir>/<ProjectName>.zip.
	ArchivePath string
}

// NewPackageRequest derives a PackageRequest from a project file path and a
// build configuration name ("Debug" unless overridden).
func NewPackageRequest(projectPath, configuration string) PackageRequest {
	if configuration == "" {
		configuration = DefaultConfiguration
	}

	base := filepath.Base(projectPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	outputDir := filepath.Join(filepath.Dir(projectPath), BinDirName, configuration)

	return PackageRequest{
		ProjectPath: projectPath,
		ProjectName: name,
		OutputDir:   outputDir,
		ArchivePath: filepath.Join(outputDir, name+ArchiveExt),
	}
}
