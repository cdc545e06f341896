package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes XXHash digests of source sets.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint hashes every path and its content, in set order.
func (f *Fingerprinter) Fingerprint(sources domain.SourceFileSet) (string, error) {
	hasher := xxhash.New()

	for _, path := range sources {
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})

		if err := hashFile(path, hasher); err != nil {
			return "", err
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashFile(path string, hasher *xxhash.Digest) error {
	f, err := os.Open(path) //nolint:gosec // Path comes from discovery
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", path)
	}
	return nil
}
