package ports

// Hasher computes a deterministic digest over a set of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeContentHash digests the names and contents of the given files.
	// The result is stable for identical inputs in identical order.
	ComputeContentHash(files []string) (string, error)
}
