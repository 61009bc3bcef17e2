package domain

const (
	// BinDirName is the name of the build output parent directory.
	BinDirName = "bin"

	// DefaultConfiguration is the build configuration packaged by default.
	DefaultConfiguration = "Debug"

	// BinpackDirName is the name of the internal metadata directory,
	// created next to the project file.
	BinpackDirName = ".binpack"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "binpack.yaml"

	// ArchiveExt is the file extension of produced archives.
	ArchiveExt = ".zip"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultExtensions are the artifact extensions collected from the output
// directory when no configuration file overrides them.
func DefaultExtensions() []string {
	return []string{".dll", ".xml", ".config"}
}

// DefaultProjectPatterns are the glob patterns used to locate a project file
// inside a project directory.
func DefaultProjectPatterns() []string {
	return []string{"*.csproj", "*.fsproj", "*.vbproj"}
}
