package dirlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shortEntry struct {
	Name  string
	IsDir bool
}

func shorten(entries []Entry) []shortEntry {
	out := make([]shortEntry, len(entries))
	for i, e := range entries {
		out[i] = shortEntry{Name: e.Name, IsDir: e.IsDir}
	}
	return out
}

func TestList_SortsDirectoriesFirst(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.txt", "Alpha.txt", "beta.bin"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	for _, name := range []string{"src", "Docs"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}

	entries, err := List(dir)
	require.NoError(t, err)

	want := []shortEntry{
		{"Docs", true},
		{"src", true},
		{"Alpha.txt", false},
		{"beta.bin", false},
		{"zeta.txt", false},
	}
	if diff := cmp.Diff(want, shorten(entries)); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestList_FillsMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	entries, err := List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, path, entries[0].Path)
	assert.Equal(t, int64(5), entries[0].Size)
	assert.False(t, entries[0].ModTime.IsZero())
}

func TestList_Empty(t *testing.T) {
	entries, err := List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_Missing(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "gone"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}
