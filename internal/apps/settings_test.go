package apps

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSettings_Tabs(t *testing.T) {
	test.NewTempApp(t)
	s := NewSettings("1.0.0")
	w := test.NewWindow(s)
	defer w.Close()

	assert.Equal(t, []string{"Desktop", "SysInfo"}, s.Tabs())
	assert.Equal(t, "Mini OS Ver. 1.0.0", s.VersionText())
}
