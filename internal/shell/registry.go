package shell

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

// AppKind names a launchable app. The values double as launch event names.
type AppKind string

const (
	Calculator  AppKind = "calculator"
	FileManager AppKind = "file_manager"
	Notepad     AppKind = "notepad"
	Settings    AppKind = "settings"
)

// Kinds lists the app kinds in icon order.
var Kinds = []AppKind{Calculator, FileManager, Notepad, Settings}

var ErrUnknownApp = errors.New("unknown app")

func ParseAppKind(s string) (AppKind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownApp, s)
}

// Factory builds a fresh app instance for a child window.
type Factory func() (fyne.CanvasObject, error)

// Entry is one icon on the desktop together with how to launch its app.
type Entry struct {
	Kind     AppKind
	Label    string
	Icon     fyne.Resource
	Position fyne.Position

	// Title and WindowSize describe the child window the app opens in.
	Title      string
	WindowSize fyne.Size
	New        Factory
}

// Registry is the ordered, fixed set of desktop icons.
type Registry struct {
	entries []Entry
	byKind  map[AppKind]int
}

func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{byKind: make(map[AppKind]int, len(entries))}
	for _, e := range entries {
		if e.Kind == "" {
			return nil, errors.New("registry entry without kind")
		}
		if e.New == nil {
			return nil, fmt.Errorf("registry entry %q has no factory", e.Kind)
		}
		if _, dup := r.byKind[e.Kind]; dup {
			return nil, fmt.Errorf("duplicate registry entry %q", e.Kind)
		}
		r.byKind[e.Kind] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// Entries returns the entries in display order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) Lookup(kind AppKind) (Entry, bool) {
	i, ok := r.byKind[kind]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}
