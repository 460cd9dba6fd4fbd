package apps

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mini-os/internal/calc"
	"mini-os/internal/logger"
)

// Calculator is a keypad over a single display buffer.
type Calculator struct {
	widget.BaseWidget

	state   *calc.Calculator
	display *widget.Label
	buttons map[string]*widget.Button
	logger  logger.Logger
}

func NewCalculator(log logger.Logger) *Calculator {
	c := &Calculator{
		state:   calc.NewCalculator(),
		display: widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}),
		buttons: make(map[string]*widget.Button, len(calc.Keys)+1),
		logger:  log,
	}
	c.display.Truncation = fyne.TextTruncateClip

	for _, key := range append(append([]string{}, calc.Keys...), calc.KeyClear) {
		key := key
		c.buttons[key] = widget.NewButton(key, func() { c.Press(key) })
	}
	c.buttons[calc.KeyEquals].Importance = widget.HighImportance

	c.ExtendBaseWidget(c)
	return c
}

// Press applies a keypad key and refreshes the display.
func (c *Calculator) Press(key string) {
	err := c.state.Press(key)
	switch {
	case errors.Is(err, calc.ErrUnknownKey):
		return
	case err != nil:
		c.logger.Debug("Calculator", "evaluation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.display.SetText(c.state.Display())
}

func (c *Calculator) Display() string {
	return c.state.Display()
}

// Button returns the keypad button for key, or nil.
func (c *Calculator) Button(key string) *widget.Button {
	return c.buttons[key]
}

func (c *Calculator) CreateRenderer() fyne.WidgetRenderer {
	keys := make([]fyne.CanvasObject, 0, len(calc.Keys))
	for _, key := range calc.Keys {
		keys = append(keys, c.buttons[key])
	}
	keypad := container.NewGridWithColumns(4, keys...)

	top := container.NewBorder(nil, nil, nil, c.buttons[calc.KeyClear], c.display)
	return widget.NewSimpleRenderer(container.NewBorder(top, nil, nil, nil, keypad))
}

// Tapped takes keyboard focus so typed keys reach the keypad.
func (c *Calculator) Tapped(_ *fyne.PointEvent) {
	if cnv := fyne.CurrentApp().Driver().CanvasForObject(c); cnv != nil {
		cnv.Focus(c)
	}
}

func (c *Calculator) FocusGained() {}
func (c *Calculator) FocusLost()   {}

func (c *Calculator) TypedRune(r rune) {
	c.Press(string(r))
}

func (c *Calculator) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		c.Press(calc.KeyEquals)
	case fyne.KeyEscape, fyne.KeyDelete:
		c.Press(calc.KeyClear)
	}
}

var _ fyne.Focusable = (*Calculator)(nil)
