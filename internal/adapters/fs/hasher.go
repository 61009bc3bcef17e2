package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests over artifact sets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrFileOpenFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrFileHashFailed, err.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeContentHash computes a single digest over the given files. Each
// file contributes its basename and its content hash. Files are hashed
// concurrently but combined in input order, so the result is stable for
// identical inputs.
func (h *Hasher) ComputeContentHash(files []string) (string, error) {
	hashes := make([]uint64, len(files))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			sum, err := h.ComputeFileHash(path)
			if err != nil {
				return err
			}
			hashes[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	digest := xxhash.New()
	for i, path := range files {
		_, _ = digest.WriteString(filepath.Base(path))
		_, _ = digest.Write([]byte{0}) // Separator
		if err := binary.Write(digest, binary.LittleEndian, hashes[i]); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
