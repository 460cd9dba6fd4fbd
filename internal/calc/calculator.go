package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorToken replaces the display when an evaluation fails.
const ErrorToken = "Error"

// Keys in keypad order, four per row.
var Keys = []string{
	"7", "8", "9", "/",
	"4", "5", "6", "*",
	"1", "2", "3", "-",
	"0", ".", "=", "+",
}

const (
	KeyEquals = "="
	KeyClear  = "C"
)

var ErrUnknownKey = errors.New("unknown key")

// Calculator is the display buffer of one calculator instance.
type Calculator struct {
	display string
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Display() string {
	return c.display
}

// Press applies one keypad key. Digits, '.' and operators append; '='
// evaluates the buffer and replaces it with the result or ErrorToken, and
// the evaluation error is returned for logging. 'C' clears.
func (c *Calculator) Press(key string) error {
	switch {
	case key == KeyEquals:
		result, err := Evaluate(c.display)
		if err != nil {
			c.display = ErrorToken
			return err
		}
		c.display = result
		return nil
	case key == KeyClear:
		c.display = ""
		return nil
	case len(key) == 1 && strings.Contains("0123456789.+-*/", key):
		c.display += key
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}
