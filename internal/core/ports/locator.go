// Package ports defines the core interfaces for the application.
package ports

// ProjectLocator resolves a user-supplied path to a single project file.
// This is the stand-in for the IDE's selection service: the core never
// interprets selections itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ProjectLocator interface {
	// Locate returns the absolute path of the project file for the given
	// path. A file path is returned as-is (absolutized); for a directory,
	// exactly one entry matching the patterns must exist.
	Locate(path string, patterns []string) (string, error)
}
