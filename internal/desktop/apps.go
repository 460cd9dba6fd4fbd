package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"mini-os/internal/apps"
	"mini-os/internal/shell"
)

func (d *Desktop) entries() []shell.Entry {
	return []shell.Entry{
		{
			Kind:       shell.Calculator,
			Label:      "Calculator",
			Icon:       theme.GridIcon(),
			Position:   fyne.NewPos(50, 50),
			Title:      "Calculator",
			WindowSize: fyne.NewSize(175, 250),
			New:        d.newCalculator,
		},
		{
			Kind:       shell.FileManager,
			Label:      "File Manager",
			Icon:       theme.FolderIcon(),
			Position:   fyne.NewPos(130, 50),
			Title:      "File Manager",
			WindowSize: fyne.NewSize(400, 400),
			New:        d.newFileManager,
		},
		{
			Kind:       shell.Notepad,
			Label:      "Notepad",
			Icon:       theme.DocumentIcon(),
			Position:   fyne.NewPos(210, 50),
			Title:      apps.NotepadTitle,
			WindowSize: fyne.NewSize(150, 300),
			New:        d.newNotepad,
		},
		{
			Kind:       shell.Settings,
			Label:      "Settings",
			Icon:       theme.SettingsIcon(),
			Position:   fyne.NewPos(290, 50),
			Title:      "System Settings",
			WindowSize: fyne.NewSize(300, 225),
			New:        d.newSettings,
		},
	}
}

func (d *Desktop) newCalculator() (fyne.CanvasObject, error) {
	return apps.NewCalculator(d.logger), nil
}

func (d *Desktop) newNotepad() (fyne.CanvasObject, error) {
	return apps.NewNotepad(d.prompter, d.logger), nil
}

func (d *Desktop) newSettings() (fyne.CanvasObject, error) {
	return apps.NewSettings(d.version), nil
}

func (d *Desktop) newFileManager() (fyne.CanvasObject, error) {
	fm := apps.NewFileManager(d.startDir, d.prompter, d.logger)
	fm.OnOpenDocument = func(path string) {
		_, _ = d.OpenDocument(path)
	}

	if d.newWatcher != nil {
		w, err := d.newWatcher(func() { fyne.Do(fm.Reload) })
		if err != nil {
			d.logger.Warning("Desktop", "file manager auto-refresh disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			fm.AttachWatcher(w)
		}
	}
	return fm, nil
}
