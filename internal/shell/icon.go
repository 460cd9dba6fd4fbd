package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Icon is a desktop launcher. Only a double tap launches; single taps do nothing.
type Icon struct {
	widget.BaseWidget

	entry    Entry
	OnLaunch func(AppKind)
}

func NewIcon(entry Entry, onLaunch func(AppKind)) *Icon {
	i := &Icon{entry: entry, OnLaunch: onLaunch}
	i.ExtendBaseWidget(i)
	return i
}

func (i *Icon) Kind() AppKind {
	return i.entry.Kind
}

func (i *Icon) DoubleTapped(_ *fyne.PointEvent) {
	if i.OnLaunch != nil {
		i.OnLaunch(i.entry.Kind)
	}
}

func (i *Icon) CreateRenderer() fyne.WidgetRenderer {
	img := widget.NewIcon(i.entry.Icon)
	label := widget.NewLabelWithStyle(i.entry.Label, fyne.TextAlignCenter, fyne.TextStyle{})
	label.Truncation = fyne.TextTruncateEllipsis
	return widget.NewSimpleRenderer(container.NewBorder(nil, label, nil, nil, img))
}
