package prompt

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"mini-os/internal/logger"
)

// Dialogs implements Prompter with Fyne dialogs over a single window.
type Dialogs struct {
	window   fyne.Window
	startDir string
	logger   logger.Logger
}

func NewDialogs(window fyne.Window, startDir string, log logger.Logger) *Dialogs {
	return &Dialogs{window: window, startDir: startDir, logger: log}
}

func (d *Dialogs) OpenFile(title string, filters []FileFilter, onChosen func(path string)) {
	d.chooseFilter(title, "Browse", filters, func(filter FileFilter) {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				d.ShowError(title, err)
				return
			}
			if reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			onChosen(path)
		}, d.window)
		d.configure(fd, filter)
		fd.Show()
	})
}

func (d *Dialogs) SaveFile(title string, filters []FileFilter, onChosen func(path string)) {
	d.chooseFilter(title, "Browse", filters, func(filter FileFilter) {
		fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				d.ShowError(title, err)
				return
			}
			if writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if target := withExtension(path, filter); target != path {
				// The dialog already created path; the document is written to target.
				if err := storage.Delete(writer.URI()); err != nil {
					d.logger.Debug("Dialogs", "placeholder file not removed", map[string]interface{}{
						"path":  path,
						"error": err.Error(),
					})
				}
				path = target
			}
			onChosen(path)
		}, d.window)
		d.configure(fd, filter)
		if len(filter.Extensions) > 0 {
			fd.SetFileName("untitled" + filter.Extensions[0])
		}
		fd.Show()
	})
}

func (d *Dialogs) AskText(title, label string, onConfirm func(text string)) {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem(label, entry)}

	form := dialog.NewForm(title, "OK", "Cancel", items, func(confirmed bool) {
		if confirmed {
			onConfirm(entry.Text)
		}
	}, d.window)
	form.Resize(fyne.NewSize(420, 160))
	form.Show()
	d.window.Canvas().Focus(entry)
}

func (d *Dialogs) ShowError(title string, err error) {
	d.logger.Warning("Dialogs", "error shown to user", map[string]interface{}{
		"title": title,
		"error": err.Error(),
	})
	dialog.ShowError(err, d.window)
}

// chooseFilter lets the user pick one filter when several are offered,
// since the Fyne file dialog applies a single filter at a time.
func (d *Dialogs) chooseFilter(title, confirm string, filters []FileFilter, next func(FileFilter)) {
	switch len(filters) {
	case 0:
		next(AllFiles)
		return
	case 1:
		next(filters[0])
		return
	}

	labels := make([]string, len(filters))
	for i, f := range filters {
		labels[i] = f.Label
	}
	typeSelect := widget.NewSelect(labels, nil)
	typeSelect.SetSelectedIndex(0)

	content := container.NewVBox(
		widget.NewLabel("Files of type:"),
		typeSelect,
	)

	dialog.ShowCustomConfirm(title, confirm, "Cancel", content, func(confirmed bool) {
		if !confirmed {
			return
		}
		idx := typeSelect.SelectedIndex()
		if idx < 0 {
			idx = 0
		}
		next(filters[idx])
	}, d.window)
}

// withExtension adds the filter's first extension to a path none of its
// extensions match.
func withExtension(path string, filter FileFilter) string {
	if filter.Matches(path) {
		return path
	}
	return path + filter.Extensions[0]
}

type locatable interface {
	SetFilter(storage.FileFilter)
	SetLocation(fyne.ListableURI)
}

func (d *Dialogs) configure(fd locatable, filter FileFilter) {
	if len(filter.Extensions) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(filter.Extensions))
	}
	if d.startDir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(d.startDir))
	if err != nil {
		d.logger.Debug("Dialogs", "start directory not listable", map[string]interface{}{
			"dir":   d.startDir,
			"error": err.Error(),
		})
		return
	}
	fd.SetLocation(lister)
}
