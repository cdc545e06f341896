package state_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/state"
	"go.trai.ch/cbuild/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".cbuild", "state.json")

	store, err := state.NewStore(storePath)
	require.NoError(t, err)

	record := domain.BuildRecord{
		Phase:       domain.PhaseCompile,
		ExitCode:    0,
		Succeeded:   true,
		SourceCount: 3,
		Fingerprint: "0123456789abcdef",
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, store.Put(record))

	got, err := store.Get(domain.PhaseCompile)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	got, err := store.Get(domain.PhaseRun)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PutReplacesPhase(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.BuildRecord{Phase: domain.PhaseRun, ExitCode: 1}))
	require.NoError(t, store.Put(domain.BuildRecord{Phase: domain.PhaseRun, ExitCode: 0, Succeeded: true}))

	got, err := store.Get(domain.PhaseRun)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.ExitCode)
	assert.True(t, got.Succeeded)
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nested", "state.json")

	store1, err := state.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store1.Put(domain.BuildRecord{Phase: domain.PhaseCompile, Fingerprint: "abc"}))
	require.NoError(t, store1.Put(domain.BuildRecord{Phase: domain.PhaseRun, ExitCode: 3}))

	store2, err := state.Open(storePath)
	require.NoError(t, err)

	compile, err := store2.Get(domain.PhaseCompile)
	require.NoError(t, err)
	require.NotNil(t, compile)
	assert.Equal(t, "abc", compile.Fingerprint)

	run, err := store2.Get(domain.PhaseRun)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, domain.PhaseStatusTolerated, run.Status())
}

func TestStore_OmitZero(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := state.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.BuildRecord{Phase: domain.PhaseRun}))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	require.NoError(t, err)

	jsonStr := string(content)
	assert.Contains(t, jsonStr, `"exit_code"`)
	assert.False(t, strings.Contains(jsonStr, "fingerprint"), "zero fingerprint should be omitted")
	assert.False(t, strings.Contains(jsonStr, "timestamp"), "zero timestamp should be omitted")
}

func TestStore_EmptyFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(storePath, nil, 0o600))

	store, err := state.NewStore(storePath)
	require.NoError(t, err)

	got, err := store.Get(domain.PhaseCompile)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	_, err := state.NewStore(storePath)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_UnwritableDirectory(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "sub")

	store, err := state.NewStore(filepath.Join(parent, "state.json"))
	require.NoError(t, err)

	// The parent directory can no longer be created once a file takes its place.
	require.NoError(t, os.WriteFile(parent, []byte("file"), 0o600))

	err = store.Put(domain.BuildRecord{Phase: domain.PhaseCompile})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}
