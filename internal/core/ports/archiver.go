package ports

// Archiver writes a set of files into a single zip archive.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Write creates (or truncates) the archive at archivePath and adds one
	// flat entry per file, named by the file's basename. The archive handle
	// is closed on every exit path.
	Write(archivePath string, files []string) error
}
