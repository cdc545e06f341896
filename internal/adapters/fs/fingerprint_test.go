package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/fs"
	"go.trai.ch/cbuild/internal/core/domain"
)

func TestFingerprinter_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.c", "b.c")
	sources := domain.SourceFileSet{filepath.Join(root, "a.c"), filepath.Join(root, "b.c")}

	fp := fs.NewFingerprinter()

	first, err := fp.Fingerprint(sources)
	require.NoError(t, err)
	second, err := fp.Fingerprint(sources)
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.Equal(t, first, second)
}

func TestFingerprinter_ChangesWithContent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.c")
	path := filepath.Join(root, "a.c")
	sources := domain.SourceFileSet{path}

	fp := fs.NewFingerprinter()

	before, err := fp.Fingerprint(sources)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("int main(void) { return 1; }\n"), 0o600))

	after, err := fp.Fingerprint(sources)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestFingerprinter_ChangesWithPaths(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.c", "b.c")

	fp := fs.NewFingerprinter()

	one, err := fp.Fingerprint(domain.SourceFileSet{filepath.Join(root, "a.c")})
	require.NoError(t, err)
	two, err := fp.Fingerprint(domain.SourceFileSet{filepath.Join(root, "a.c"), filepath.Join(root, "b.c")})
	require.NoError(t, err)

	assert.NotEqual(t, one, two)
}

func TestFingerprinter_MissingFile(t *testing.T) {
	_, err := fs.NewFingerprinter().Fingerprint(domain.SourceFileSet{filepath.Join(t.TempDir(), "gone.c")})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFingerprintFailed.Error())
}
