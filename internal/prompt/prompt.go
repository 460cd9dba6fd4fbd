// Package prompt puts the modal dialogs used by the apps behind an interface.
//
// Every prompt is asynchronous: the callback runs only when the user
// confirms, so a cancelled prompt leaves the caller's state untouched.
package prompt

import (
	"path/filepath"
	"strings"
)

// FileFilter restricts a file prompt to a set of extensions. A filter with
// no extensions matches every file.
type FileFilter struct {
	Label      string
	Extensions []string
}

var (
	TextFiles = FileFilter{Label: "Text files (*.txt)", Extensions: []string{".txt"}}
	AllFiles  = FileFilter{Label: "All files (*.*)"}
)

// TextDocumentFilters is the filter list offered by Notepad.
var TextDocumentFilters = []FileFilter{TextFiles, AllFiles}

// Matches reports whether name passes the filter.
func (f FileFilter) Matches(name string) bool {
	if len(f.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range f.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

type Prompter interface {
	// OpenFile asks for an existing file to read.
	OpenFile(title string, filters []FileFilter, onChosen func(path string))
	// SaveFile asks for a destination path.
	SaveFile(title string, filters []FileFilter, onChosen func(path string))
	// AskText asks for a single line of text.
	AskText(title, label string, onConfirm func(text string))
	// ShowError blocks the window with an error notification.
	ShowError(title string, err error)
}
