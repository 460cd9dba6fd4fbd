package apps

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Settings shows static system information. It holds no mutable state.
type Settings struct {
	widget.BaseWidget

	version string
	tabs    *container.AppTabs
}

func NewSettings(version string) *Settings {
	s := &Settings{version: version}
	s.tabs = container.NewAppTabs(
		container.NewTabItem("Desktop", s.desktopTab()),
		container.NewTabItem("SysInfo", s.sysInfoTab()),
	)
	s.ExtendBaseWidget(s)
	return s
}

// VersionText is the version line on the SysInfo tab.
func (s *Settings) VersionText() string {
	return "Mini OS Ver. " + s.version
}

// Tabs returns the tab titles in display order.
func (s *Settings) Tabs() []string {
	titles := make([]string, len(s.tabs.Items))
	for i, item := range s.tabs.Items {
		titles[i] = item.Text
	}
	return titles
}

func (s *Settings) desktopTab() fyne.CanvasObject {
	return container.NewVBox(widget.NewLabel("Desktop Settings"))
}

func (s *Settings) sysInfoTab() fyne.CanvasObject {
	logo := canvas.NewImageFromResource(theme.ComputerIcon())
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(64, 64))

	facts := widget.NewForm(
		widget.NewFormItem("OS", widget.NewLabel(runtime.GOOS+"/"+runtime.GOARCH)),
		widget.NewFormItem("Go", widget.NewLabel(runtime.Version())),
		widget.NewFormItem("CPUs", widget.NewLabel(fmt.Sprint(runtime.NumCPU()))),
	)

	return container.NewVBox(
		widget.NewLabel("SysInfo Settings"),
		logo,
		widget.NewLabelWithStyle(s.VersionText(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		facts,
	)
}

func (s *Settings) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.tabs)
}
