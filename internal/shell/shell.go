// Package shell is the desktop icon surface. It only reports which app an
// icon asks for; it never starts anything itself.
package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mini-os/internal/logger"
)

type Shell struct {
	widget.BaseWidget

	registry *Registry
	icons    []*Icon
	logger   logger.Logger

	// OnLaunch receives the app kind of a double-tapped icon.
	OnLaunch func(AppKind)
}

func New(registry *Registry, log logger.Logger) *Shell {
	s := &Shell{registry: registry, logger: log}
	for _, e := range registry.Entries() {
		s.icons = append(s.icons, NewIcon(e, s.launch))
	}
	s.ExtendBaseWidget(s)
	return s
}

// Icons returns the launchers in registry order.
func (s *Shell) Icons() []*Icon {
	return s.icons
}

func (s *Shell) launch(kind AppKind) {
	s.logger.Debug("Shell", "icon double-tapped", map[string]interface{}{
		"kind": string(kind),
	})
	if s.OnLaunch != nil {
		s.OnLaunch(kind)
	}
}

func (s *Shell) CreateRenderer() fyne.WidgetRenderer {
	positions := make([]fyne.Position, 0, len(s.icons))
	objects := make([]fyne.CanvasObject, 0, len(s.icons))
	for _, icon := range s.icons {
		positions = append(positions, icon.entry.Position)
		objects = append(objects, icon)
	}
	layer := container.New(newFixedPositionLayout(positions, TileSize), objects...)
	return widget.NewSimpleRenderer(layer)
}
