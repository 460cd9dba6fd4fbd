package apps

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-os/internal/logger"
	"mini-os/internal/prompt/prompttest"
)

type fakeWatcher struct {
	dirs   []string
	closed bool
}

func (f *fakeWatcher) Watch(dir string) error {
	f.dirs = append(f.dirs, dir)
	return nil
}

func (f *fakeWatcher) Close() error {
	f.closed = true
	return nil
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.bin"), []byte{0, 1, 2}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("all:"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	return dir
}

func newTestFileManager(t *testing.T, root string, replies ...prompttest.Reply) (*FileManager, *prompttest.Prompter) {
	t.Helper()
	test.NewTempApp(t)
	p := prompttest.New(replies...)
	return NewFileManager(root, p, logger.Nop{}), p
}

func TestFileManager_ListsRootDirectoriesFirst(t *testing.T) {
	dir := fixtureDir(t)
	fm, _ := newTestFileManager(t, dir)

	var names []string
	for _, p := range fm.Children(dir) {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"sub", "image.bin", "Makefile", "notes.txt"}, names)
}

func TestFileManager_GoToDirectory(t *testing.T) {
	first, second := fixtureDir(t), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "only.txt"), nil, 0o644))

	fm, p := newTestFileManager(t, first, prompttest.Reply{Value: second})
	w := &fakeWatcher{}
	fm.AttachWatcher(w)

	fm.GoToDirectory()
	require.Len(t, p.Calls, 1)
	assert.Equal(t, "Enter directory path:", p.Calls[0].Label)
	assert.Equal(t, second, fm.Root())
	assert.Equal(t, []string{first, second}, w.dirs)
	assert.Equal(t, []string{filepath.Join(second, "only.txt")}, fm.Children(second))
}

func TestFileManager_GoToDirectoryCancelled(t *testing.T) {
	dir := fixtureDir(t)
	fm, _ := newTestFileManager(t, dir, prompttest.Reply{Cancel: true})

	fm.GoToDirectory()
	assert.Equal(t, dir, fm.Root())
}

func TestFileManager_GoToBlankDirectoryIsIgnored(t *testing.T) {
	dir := fixtureDir(t)
	fm, _ := newTestFileManager(t, dir, prompttest.Reply{Value: ""}, prompttest.Reply{Value: "   "})
	w := &fakeWatcher{}
	fm.AttachWatcher(w)

	fm.GoToDirectory()
	fm.GoToDirectory()
	assert.Equal(t, dir, fm.Root())
	assert.Equal(t, dir, fm.status.Text)
	assert.Equal(t, []string{dir}, w.dirs)
}

func TestFileManager_GoToMissingDirectoryShowsEmptyListing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	fm, p := newTestFileManager(t, fixtureDir(t), prompttest.Reply{Value: missing})

	fm.GoToDirectory()
	assert.Equal(t, missing, fm.Root())
	assert.Empty(t, fm.Children(missing))
	assert.Contains(t, fm.status.Text, "Cannot read directory")
	assert.Empty(t, p.Errors)
}

func TestFileManager_OpenInNotepad(t *testing.T) {
	dir := fixtureDir(t)

	tests := []struct {
		name     string
		file     string
		wantOpen bool
		wantErr  error
	}{
		{name: "text file", file: "notes.txt", wantOpen: true},
		{name: "unknown type", file: "Makefile", wantOpen: true},
		{name: "binary file", file: "image.bin", wantErr: ErrNotText},
		{name: "directory", file: "sub", wantErr: ErrIsDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, p := newTestFileManager(t, dir)
			var opened []string
			fm.OnOpenDocument = func(path string) { opened = append(opened, path) }

			fm.Select(filepath.Join(dir, tt.file))
			err := fm.OpenInNotepad()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, opened)
				require.Len(t, p.Errors, 1)
				assert.ErrorIs(t, p.LastError(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{filepath.Join(dir, tt.file)}, opened)
			assert.Empty(t, p.Errors)
		})
	}
}

func TestFileManager_OpenInNotepadWithoutSelection(t *testing.T) {
	fm, p := newTestFileManager(t, fixtureDir(t))
	called := false
	fm.OnOpenDocument = func(string) { called = true }

	require.NoError(t, fm.OpenInNotepad())
	assert.False(t, called)
	assert.Empty(t, p.Errors)
}

func TestFileManager_CloseStopsWatcher(t *testing.T) {
	fm, _ := newTestFileManager(t, fixtureDir(t))
	w := &fakeWatcher{}
	fm.AttachWatcher(w)

	require.NoError(t, fm.Close())
	assert.True(t, w.closed)
	require.NoError(t, fm.Close())
}
