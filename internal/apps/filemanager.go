package apps

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"mini-os/internal/dirlist"
	"mini-os/internal/filetype"
	"mini-os/internal/logger"
	"mini-os/internal/prompt"
)

var (
	ErrNotText     = errors.New("not a text file")
	ErrIsDirectory = errors.New("is a directory")
)

// DirWatcher follows the file manager root so the listing can refresh itself.
type DirWatcher interface {
	Watch(dir string) error
	Close() error
}

// FileManager shows a tree rooted at one directory.
type FileManager struct {
	widget.BaseWidget

	root     string
	selected string
	entries  map[string]dirlist.Entry
	children map[string][]string

	tree     *widget.Tree
	status   *widget.Label
	prompter prompt.Prompter
	watcher  DirWatcher
	logger   logger.Logger

	// OnOpenDocument opens path in a new Notepad window.
	OnOpenDocument func(path string)
}

func NewFileManager(root string, p prompt.Prompter, log logger.Logger) *FileManager {
	fm := &FileManager{
		root:     root,
		entries:  make(map[string]dirlist.Entry),
		children: make(map[string][]string),
		status:   widget.NewLabel(""),
		prompter: p,
		logger:   log,
	}
	fm.status.Truncation = fyne.TextTruncateEllipsis
	fm.tree = widget.NewTree(fm.childUIDs, fm.isBranch, fm.createNode, fm.updateNode)
	fm.tree.OnSelected = func(uid widget.TreeNodeID) { fm.selected = uid }
	fm.tree.OnUnselected = func(uid widget.TreeNodeID) {
		if fm.selected == uid {
			fm.selected = ""
		}
	}
	fm.updateStatus(nil)
	fm.childUIDs("")

	fm.ExtendBaseWidget(fm)
	return fm
}

// AttachWatcher makes the listing follow changes under the root. The
// watcher is closed together with the file manager.
func (fm *FileManager) AttachWatcher(w DirWatcher) {
	fm.watcher = w
	fm.watchRoot()
}

func (fm *FileManager) Root() string {
	return fm.root
}

func (fm *FileManager) Selected() string {
	return fm.selected
}

// Children returns the listed entry paths directly under dir.
func (fm *FileManager) Children(dir string) []string {
	if dir == fm.root {
		return fm.childUIDs("")
	}
	return fm.childUIDs(dir)
}

// GoToDirectory asks for a new root. A cancelled prompt or a blank answer
// changes nothing.
func (fm *FileManager) GoToDirectory() {
	fm.prompter.AskText("Go to directory", "Enter directory path:", func(dir string) {
		if strings.TrimSpace(dir) == "" {
			return
		}
		fm.SetRoot(dir)
	})
}

// SetRoot makes dir the root of the listing and refreshes it.
func (fm *FileManager) SetRoot(dir string) {
	if dir != "" {
		dir = filepath.Clean(dir)
	}
	fm.logger.Debug("FileManager", "root changed", map[string]interface{}{
		"from": fm.root,
		"to":   dir,
	})
	fm.root = dir
	fm.selected = ""
	fm.tree.UnselectAll()
	fm.watchRoot()
	fm.Reload()
}

// Reload drops cached listings and redraws the tree.
func (fm *FileManager) Reload() {
	fm.entries = make(map[string]dirlist.Entry)
	fm.children = make(map[string][]string)
	fm.updateStatus(nil)
	fm.childUIDs("")
	fm.tree.Refresh()
}

// Select marks path as the current entry.
func (fm *FileManager) Select(path string) {
	fm.tree.Select(path)
	fm.selected = path
}

// OpenInNotepad opens the selected entry in a new Notepad window when its
// guessed type is unknown or text. Other types are refused with a
// notification. With nothing selected it does nothing.
func (fm *FileManager) OpenInNotepad() error {
	path := fm.selected
	if path == "" {
		return nil
	}

	if entry, ok := fm.entries[path]; (ok && entry.IsDir) || (!ok && dirlist.IsDir(path)) {
		err := fmt.Errorf("cannot open file: %w", ErrIsDirectory)
		fm.prompter.ShowError("Error", err)
		return err
	}

	contentType := filetype.Guess(path)
	if !filetype.IsTextLike(contentType) {
		fm.logger.Warning("FileManager", "refused non-text file", map[string]interface{}{
			"path": path,
			"type": contentType,
		})
		err := fmt.Errorf("cannot open file: %w", ErrNotText)
		fm.prompter.ShowError("Error", err)
		return err
	}

	if fm.OnOpenDocument != nil {
		fm.OnOpenDocument(path)
	}
	return nil
}

// Close stops watching the root.
func (fm *FileManager) Close() error {
	if fm.watcher == nil {
		return nil
	}
	err := fm.watcher.Close()
	fm.watcher = nil
	return err
}

func (fm *FileManager) TappedSecondary(ev *fyne.PointEvent) {
	cnv := fyne.CurrentApp().Driver().CanvasForObject(fm)
	if cnv == nil {
		return
	}
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Open in Notepad", func() { _ = fm.OpenInNotepad() }),
	)
	widget.ShowPopUpMenuAtPosition(menu, cnv, ev.AbsolutePosition)
}

func (fm *FileManager) CreateRenderer() fyne.WidgetRenderer {
	goTo := widget.NewButtonWithIcon("Go to directory", theme.FolderOpenIcon(), fm.GoToDirectory)
	open := widget.NewButtonWithIcon("Open in Notepad", theme.DocumentIcon(), func() { _ = fm.OpenInNotepad() })
	bottom := container.NewVBox(fm.status, container.NewGridWithColumns(2, goTo, open))
	return widget.NewSimpleRenderer(container.NewBorder(nil, bottom, nil, nil, fm.tree))
}

func (fm *FileManager) watchRoot() {
	if fm.watcher == nil || fm.root == "" {
		return
	}
	if err := fm.watcher.Watch(fm.root); err != nil {
		fm.logger.Debug("FileManager", "root not watched", map[string]interface{}{
			"root":  fm.root,
			"error": err.Error(),
		})
	}
}

func (fm *FileManager) childUIDs(uid widget.TreeNodeID) []widget.TreeNodeID {
	dir := uid
	if dir == "" {
		dir = fm.root
	}
	if cached, ok := fm.children[dir]; ok {
		return cached
	}

	entries, err := dirlist.List(dir)
	if err != nil {
		fm.logger.Debug("FileManager", "listing failed", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
		if dir == fm.root {
			fm.updateStatus(err)
		}
		fm.children[dir] = nil
		return nil
	}

	ids := make([]widget.TreeNodeID, len(entries))
	for i, e := range entries {
		fm.entries[e.Path] = e
		ids[i] = e.Path
	}
	fm.children[dir] = ids
	return ids
}

func (fm *FileManager) isBranch(uid widget.TreeNodeID) bool {
	if uid == "" {
		return true
	}
	return fm.entries[uid].IsDir
}

func (fm *FileManager) createNode(branch bool) fyne.CanvasObject {
	return container.NewHBox(widget.NewIcon(theme.FileIcon()), widget.NewLabel("template"))
}

func (fm *FileManager) updateNode(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	row := obj.(*fyne.Container)
	icon := row.Objects[0].(*widget.Icon)
	label := row.Objects[1].(*widget.Label)

	if branch {
		icon.SetResource(theme.FolderIcon())
	} else {
		icon.SetResource(theme.FileIcon())
	}
	label.SetText(filepath.Base(uid))
}

func (fm *FileManager) updateStatus(err error) {
	if err != nil {
		fm.status.SetText(fmt.Sprintf("Cannot read directory: %v", err))
		return
	}
	fm.status.SetText(fm.root)
}
