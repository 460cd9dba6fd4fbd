package apps

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"mini-os/internal/logger"
	"mini-os/internal/prompt"
	"mini-os/internal/textfile"
)

const NotepadTitle = "Notepad"

// Notepad edits one text document. The recorded path is empty until a file
// is opened or first saved, and it always names the file the buffer was
// last loaded from or saved to.
type Notepad struct {
	widget.BaseWidget

	editor   *widget.Entry
	path     string
	prompter prompt.Prompter
	logger   logger.Logger

	onTitleChanged func(string)
}

func NewNotepad(p prompt.Prompter, log logger.Logger) *Notepad {
	editor := widget.NewMultiLineEntry()
	editor.Wrapping = fyne.TextWrapWord

	n := &Notepad{
		editor:   editor,
		prompter: p,
		logger:   log,
	}
	n.ExtendBaseWidget(n)
	return n
}

func (n *Notepad) Text() string {
	return n.editor.Text
}

func (n *Notepad) SetText(text string) {
	n.editor.SetText(text)
}

func (n *Notepad) Path() string {
	return n.path
}

// Title is "Notepad", or "Notepad - <file>" once a path is recorded.
func (n *Notepad) Title() string {
	if n.path == "" {
		return NotepadTitle
	}
	return NotepadTitle + " - " + filepath.Base(n.path)
}

// SetOnTitleChanged registers the hook that keeps the window title in sync.
func (n *Notepad) SetOnTitleChanged(fn func(string)) {
	n.onTitleChanged = fn
}

// Open loads path into the buffer. On failure the user is notified and the
// buffer and path keep their previous values.
func (n *Notepad) Open(path string) error {
	text, err := textfile.Read(path)
	if err != nil {
		n.logger.Warning("Notepad", "open failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		n.prompter.ShowError("Error", fmt.Errorf("cannot open file: %w", err))
		return err
	}

	n.editor.SetText(text)
	n.setPath(path)
	n.logger.Debug("Notepad", "file opened", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return nil
}

// Save writes the buffer to the recorded path, or asks for a destination
// when there is none yet.
func (n *Notepad) Save() error {
	if n.path == "" {
		n.SaveDialog()
		return nil
	}
	return n.SaveAs(n.path)
}

// SaveAs writes the buffer to path and records it. A failed write is
// reported to the user and leaves the recorded path unchanged.
func (n *Notepad) SaveAs(path string) error {
	if err := textfile.Write(path, n.editor.Text); err != nil {
		n.logger.Error("Notepad", err, map[string]interface{}{
			"path": path,
		})
		n.prompter.ShowError("Error", fmt.Errorf("cannot save file: %w", err))
		return err
	}

	n.setPath(path)
	n.logger.Debug("Notepad", "file saved", map[string]interface{}{
		"path": path,
	})
	return nil
}

func (n *Notepad) OpenDialog() {
	n.prompter.OpenFile("Open file", prompt.TextDocumentFilters, func(path string) {
		_ = n.Open(path)
	})
}

func (n *Notepad) SaveDialog() {
	n.prompter.SaveFile("Save file", prompt.TextDocumentFilters, func(path string) {
		_ = n.SaveAs(path)
	})
}

func (n *Notepad) setPath(path string) {
	if n.path == path {
		return
	}
	n.path = path
	if n.onTitleChanged != nil {
		n.onTitleChanged(n.Title())
	}
}

func (n *Notepad) CreateRenderer() fyne.WidgetRenderer {
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { _ = n.Save() }),
		widget.NewToolbarAction(theme.FolderOpenIcon(), n.OpenDialog),
	)
	return widget.NewSimpleRenderer(container.NewBorder(toolbar, nil, nil, nil, n.editor))
}
