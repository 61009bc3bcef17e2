// Package build holds version metadata injected at link time.
package build

var (
	// Version is the application version, set via -ldflags at release time.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)
