package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventhq/solvent"
	"github.com/solventhq/solvent/history"
)

func sampleEntry() history.Entry {
	e := history.NewEntry()
	e.ProblemText = "find the longest palindromic substring"
	e.Difficulty = solvent.DifficultyMedium
	e.Mode = solvent.ModeVerified
	e.Solution = "def solve(s):\n    ...\n"
	e.Execution = &solvent.ExecuteResponse{Success: true, Output: "bab\n", ExecutionTimeMS: 12}
	return e
}

func TestNewEntry(t *testing.T) {
	t.Parallel()
	a := history.NewEntry()
	b := history.NewEntry()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()
	want := sampleEntry()
	data, err := history.Marshal(want)
	require.NoError(t, err)

	got, err := history.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUnmarshal_RejectsUnknownVersion(t *testing.T) {
	t.Parallel()
	_, err := history.Unmarshal([]byte(`{"version": 2, "id": "x"}`))
	assert.ErrorContains(t, err, "unsupported envelope version")
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()
	st := history.NewStore(filepath.Join(t.TempDir(), "nested", "history"))

	want := sampleEntry()
	require.NoError(t, st.Save(want))

	got, err := st.Load(want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveRequiresID(t *testing.T) {
	t.Parallel()
	st := history.NewStore(t.TempDir())
	assert.Error(t, st.Save(history.Entry{}))
}

func TestStore_List(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	st := history.NewStore(dir)

	older := sampleEntry()
	older.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := sampleEntry()
	newer.CreatedAt = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.Save(older))
	require.NoError(t, st.Save(newer))

	// A corrupt file must not hide the valid entries.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{"), 0o600))

	entries, err := st.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)
}

func TestStore_ListMissingDir(t *testing.T) {
	t.Parallel()
	st := history.NewStore(filepath.Join(t.TempDir(), "does-not-exist"))
	entries, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	st := history.NewStore(t.TempDir())
	e := sampleEntry()
	require.NoError(t, st.Save(e))

	require.NoError(t, st.Delete(e.ID))
	_, err := st.Load(e.ID)
	assert.Error(t, err)

	// Deleting again is not an error.
	assert.NoError(t, st.Delete(e.ID))
}
