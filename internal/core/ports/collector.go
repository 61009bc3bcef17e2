package ports

// ArtifactCollector enumerates packageable files in a build output directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type ArtifactCollector interface {
	// Collect returns the absolute paths of files directly inside outputDir
	// whose extension matches one of extensions, in lexicographic order.
	// Subdirectories are not scanned. Returns domain.ErrOutputDirMissing
	// if outputDir does not exist.
	Collect(outputDir string, extensions []string) ([]string, error)
}
