package domain

import "go.trai.ch/zerr"

var (
	// ErrNoProjectSpecified is returned when the pack command is invoked without a project argument.
	ErrNoProjectSpecified = zerr.New("no project specified")

	// ErrProjectNotFound is returned when no project file can be located for the given path.
	ErrProjectNotFound = zerr.New("no project file found")

	// ErrAmbiguousProject is returned when a directory contains more than one project file.
	ErrAmbiguousProject = zerr.New("multiple project files found, specify one explicitly")

	// ErrOutputDirMissing is returned by the collector when the build output directory does not exist.
	ErrOutputDirMissing = zerr.New("output directory does not exist")

	// ErrCollectFailed is returned when scanning the output directory fails.
	ErrCollectFailed = zerr.New("failed to collect artifacts")

	// ErrArchiveCreateFailed is returned when the archive file cannot be created.
	ErrArchiveCreateFailed = zerr.New("failed to create archive")

	// ErrArchiveWriteFailed is returned when writing an entry to the archive fails.
	ErrArchiveWriteFailed = zerr.New("failed to write archive entry")

	// ErrArchiveCloseFailed is returned when flushing or closing the archive fails.
	ErrArchiveCloseFailed = zerr.New("failed to finalize archive")

	// ErrFileOpenFailed is returned when an artifact file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing an artifact fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrManifestReadFailed is returned when the package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestUnmarshalFailed is returned when the package manifest cannot be unmarshaled.
	ErrManifestUnmarshalFailed = zerr.New("failed to unmarshal package manifest")

	// ErrManifestMarshalFailed is returned when the package manifest cannot be marshaled.
	ErrManifestMarshalFailed = zerr.New("failed to marshal package manifest")

	// ErrManifestWriteFailed is returned when the package manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write package manifest")

	// ErrPackagingFailed is returned when packaging fails for any reason.
	ErrPackagingFailed = zerr.New("packaging failed")

	// ErrWatchFailed is returned when the file system watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch output directory")
)
