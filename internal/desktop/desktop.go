// Package desktop is the main window: the icon shell, the child-window
// workspace, a status bar and the File menu.
package desktop

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"mini-os/internal/apps"
	"mini-os/internal/eventbus"
	"mini-os/internal/logger"
	"mini-os/internal/prompt"
	"mini-os/internal/shell"
	"mini-os/internal/workspace"
)

const Title = "Mini OS Simulation"

var (
	WindowSize   = fyne.NewSize(800, 600)
	DocumentSize = fyne.NewSize(800, 600)

	// ChildOrigin is where every child window opens.
	ChildOrigin = fyne.NewPos(100, 100)

	ExitShortcut = &fynedesktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierShortcutDefault}
)

// ErrUnknownApp is returned by Launch for kinds without a registry entry.
var ErrUnknownApp = shell.ErrUnknownApp

// WatcherFactory starts a directory watcher calling onChange off the UI thread.
type WatcherFactory func(onChange func()) (apps.DirWatcher, error)

type Options struct {
	StartDir  string
	Version   string
	Prompter  prompt.Prompter
	Publisher workspace.Publisher
	Logger    logger.Logger

	// Quit ends the application after the child windows are closed.
	Quit func()
	// NewWatcher, when set, keeps File Manager listings current.
	NewWatcher WatcherFactory
}

type Desktop struct {
	registry  *shell.Registry
	shell     *shell.Shell
	workspace *workspace.Container
	status    *widget.Label
	content   fyne.CanvasObject

	startDir   string
	version    string
	prompter   prompt.Prompter
	bus        workspace.Publisher
	logger     logger.Logger
	quit       func()
	newWatcher WatcherFactory
	exitOnce   sync.Once
}

func New(opts Options) (*Desktop, error) {
	if opts.Prompter == nil {
		return nil, errors.New("desktop: prompter is required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}

	d := &Desktop{
		status:     widget.NewLabel(""),
		startDir:   opts.StartDir,
		version:    opts.Version,
		prompter:   opts.Prompter,
		bus:        opts.Publisher,
		logger:     opts.Logger,
		quit:       opts.Quit,
		newWatcher: opts.NewWatcher,
	}

	wsOpts := []workspace.Option{workspace.WithLogger(opts.Logger)}
	if opts.Publisher != nil {
		wsOpts = append(wsOpts, workspace.WithPublisher(opts.Publisher))
	}
	d.workspace = workspace.New(wsOpts...)
	d.workspace.OnChanged = d.updateStatus

	registry, err := shell.NewRegistry(d.entries()...)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	d.registry = registry

	d.shell = shell.New(registry, opts.Logger)
	d.shell.OnLaunch = func(kind shell.AppKind) {
		_, _ = d.Launch(string(kind))
	}

	d.updateStatus(0)
	d.content = container.NewBorder(nil, d.status, nil, nil,
		container.NewStack(d.shell, d.workspace.Object()))

	return d, nil
}

func (d *Desktop) Content() fyne.CanvasObject {
	return d.content
}

func (d *Desktop) Shell() *shell.Shell {
	return d.shell
}

func (d *Desktop) Workspace() *workspace.Container {
	return d.workspace
}

func (d *Desktop) Registry() *shell.Registry {
	return d.registry
}

func (d *Desktop) StatusText() string {
	return d.status.Text
}

// Install puts the desktop into w with its main menu and exit shortcut.
func (d *Desktop) Install(w fyne.Window) {
	w.SetContent(d.content)
	w.SetMainMenu(d.MainMenu())
	w.Canvas().AddShortcut(ExitShortcut, func(fyne.Shortcut) { d.Exit() })
	w.SetCloseIntercept(func() {
		d.Shutdown()
		w.Close()
	})
}

func (d *Desktop) MainMenu() *fyne.MainMenu {
	exit := fyne.NewMenuItem("Exit", d.Exit)
	exit.IsQuit = true
	exit.Shortcut = ExitShortcut

	return fyne.NewMainMenu(fyne.NewMenu("File", exit))
}

// Exit closes every child window and quits. Only the first call has effect.
func (d *Desktop) Exit() {
	d.exitOnce.Do(func() {
		d.logger.Info("Desktop", "exit requested", map[string]interface{}{
			"open_windows": d.workspace.Len(),
		})
		d.Shutdown()
		if d.quit != nil {
			d.quit()
		}
	})
}

// Shutdown closes all child windows.
func (d *Desktop) Shutdown() {
	d.workspace.CloseAll()
}

// Launch opens a fresh instance of the app named by a launch event in a
// new child window.
func (d *Desktop) Launch(name string) (workspace.ID, error) {
	kind, err := shell.ParseAppKind(name)
	if err != nil {
		err = fmt.Errorf("launch: %w", err)
		d.reject(name, err)
		return "", err
	}

	entry, ok := d.registry.Lookup(kind)
	if !ok {
		err := fmt.Errorf("launch: %w: %q", ErrUnknownApp, name)
		d.reject(name, err)
		return "", err
	}

	content, err := entry.New()
	if err != nil {
		err = fmt.Errorf("launch %s: %w", kind, err)
		d.reject(name, err)
		return "", err
	}

	win := d.open(string(kind), entry.Title, entry.Icon, content, entry.WindowSize)
	d.publish(eventbus.AppLaunched, map[string]interface{}{
		"kind": string(kind),
		"id":   string(win.ID),
	})
	return win.ID, nil
}

// OpenDocument opens path in a new Notepad child window. Nothing is opened
// when the file cannot be loaded.
func (d *Desktop) OpenDocument(path string) (workspace.ID, error) {
	n := apps.NewNotepad(d.prompter, d.logger)
	if err := n.Open(path); err != nil {
		return "", err
	}

	entry, _ := d.registry.Lookup(shell.Notepad)
	win := d.open(string(shell.Notepad), n.Title(), entry.Icon, n, DocumentSize)
	d.publish(eventbus.AppLaunched, map[string]interface{}{
		"kind": string(shell.Notepad),
		"id":   string(win.ID),
		"path": filepath.Clean(path),
	})
	return win.ID, nil
}

type titled interface {
	SetOnTitleChanged(func(string))
}

func (d *Desktop) open(kind, title string, icon fyne.Resource, content fyne.CanvasObject, size fyne.Size) *workspace.Window {
	win := d.workspace.Open(workspace.Spec{
		Kind:    kind,
		Title:   title,
		Icon:    icon,
		Content: content,
		Geometry: workspace.Geometry{
			X:      ChildOrigin.X,
			Y:      ChildOrigin.Y,
			Width:  size.Width,
			Height: size.Height,
		},
	})
	if t, ok := content.(titled); ok {
		t.SetOnTitleChanged(win.SetTitle)
	}
	return win
}

func (d *Desktop) reject(name string, err error) {
	d.logger.Warning("Desktop", "launch rejected", map[string]interface{}{
		"kind":  name,
		"error": err.Error(),
	})
	d.publish(eventbus.AppRejected, map[string]interface{}{
		"kind":  name,
		"error": err.Error(),
	})
}

func (d *Desktop) publish(eventType string, data map[string]interface{}) {
	if d.bus == nil {
		return
	}
	d.bus.Publish(eventbus.Event{Type: eventType, Timestamp: time.Now(), Data: data})
}

func (d *Desktop) updateStatus(count int) {
	if count == 1 {
		d.status.SetText("1 window open")
		return
	}
	d.status.SetText(fmt.Sprintf("%d windows open", count))
}
