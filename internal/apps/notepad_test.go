package apps

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-os/internal/logger"
	"mini-os/internal/prompt"
	"mini-os/internal/prompt/prompttest"
	"mini-os/internal/textfile"
)

func newTestNotepad(t *testing.T, replies ...prompttest.Reply) (*Notepad, *prompttest.Prompter) {
	t.Helper()
	test.NewTempApp(t)
	p := prompttest.New(replies...)
	return NewNotepad(p, logger.Nop{}), p
}

func TestNotepad_OpenReplacesBufferAndTitle(t *testing.T) {
	n, p := newTestNotepad(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld"), 0o644))

	var titles []string
	n.SetOnTitleChanged(func(title string) { titles = append(titles, title) })

	assert.Equal(t, NotepadTitle, n.Title())
	require.NoError(t, n.Open(path))
	assert.Equal(t, "hello\nworld", n.Text())
	assert.Equal(t, path, n.Path())
	assert.Equal(t, []string{"Notepad - notes.txt"}, titles)
	assert.Empty(t, p.Errors)
}

func TestNotepad_OpenInvalidUTF8KeepsState(t *testing.T) {
	n, p := newTestNotepad(t)
	n.SetText("draft")
	path := filepath.Join(t.TempDir(), "blob.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644))

	err := n.Open(path)
	require.ErrorIs(t, err, textfile.ErrInvalidEncoding)
	assert.Equal(t, "draft", n.Text())
	assert.Equal(t, "", n.Path())
	require.Len(t, p.Errors, 1)
	assert.ErrorIs(t, p.LastError(), textfile.ErrInvalidEncoding)
}

func TestNotepad_OpenMissingFile(t *testing.T) {
	n, p := newTestNotepad(t)
	err := n.Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, p.Errors, 1)
}

func TestNotepad_SaveWithoutPathPrompts(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.txt")
	n, p := newTestNotepad(t, prompttest.Reply{Value: dest})
	n.SetText("abc")

	require.NoError(t, n.Save())
	require.Len(t, p.Calls, 1)
	assert.Equal(t, "save", p.Calls[0].Kind)
	assert.Equal(t, prompt.TextDocumentFilters, p.Calls[0].Filters)
	assert.Equal(t, dest, n.Path())
	assert.Equal(t, "Notepad - out.txt", n.Title())

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestNotepad_SaveOverwritesRecordedPath(t *testing.T) {
	n, p := newTestNotepad(t)
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, n.Open(path))

	n.SetText("new")
	require.NoError(t, n.Save())
	assert.Empty(t, p.Calls)

	text, err := textfile.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "new", text)
}

func TestNotepad_SaveCancelledLeavesState(t *testing.T) {
	n, p := newTestNotepad(t, prompttest.Reply{Cancel: true})
	n.SetText("unsaved")

	require.NoError(t, n.Save())
	assert.Equal(t, "", n.Path())
	assert.Equal(t, "unsaved", n.Text())
	assert.Len(t, p.Calls, 1)
}

func TestNotepad_SaveErrorIsReported(t *testing.T) {
	n, p := newTestNotepad(t)
	n.SetText("data")
	bad := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")

	err := n.SaveAs(bad)
	require.Error(t, err)
	assert.Equal(t, "", n.Path())
	assert.Equal(t, "data", n.Text())
	require.Len(t, p.Errors, 1)
	assert.Contains(t, p.LastError().Error(), "cannot save file")
}

func TestNotepad_OpenDialog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("from dialog"), 0o644))

	n, p := newTestNotepad(t, prompttest.Reply{Value: path}, prompttest.Reply{Cancel: true})
	n.OpenDialog()
	assert.Equal(t, "from dialog", n.Text())
	assert.Equal(t, "open", p.Calls[0].Kind)

	n.OpenDialog()
	assert.Equal(t, path, n.Path())
	assert.Equal(t, "from dialog", n.Text())
}
