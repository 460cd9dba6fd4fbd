package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, c *Calculator, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_ = c.Press(k)
	}
}

func TestCalculator_StartsEmpty(t *testing.T) {
	assert.Equal(t, "", NewCalculator().Display())
}

func TestCalculator_AppendsKeys(t *testing.T) {
	c := NewCalculator()
	press(t, c, "1", "2", "+", "3", ".", "5")
	assert.Equal(t, "12+3.5", c.Display())
}

func TestCalculator_EqualsReplacesDisplay(t *testing.T) {
	c := NewCalculator()
	press(t, c, "9", "*", "9")
	require.NoError(t, c.Press(KeyEquals))
	assert.Equal(t, "81", c.Display())

	// Further input continues from the result.
	press(t, c, "/", "2")
	require.NoError(t, c.Press(KeyEquals))
	assert.Equal(t, "40.5", c.Display())
}

func TestCalculator_ErrorToken(t *testing.T) {
	c := NewCalculator()
	press(t, c, "1", "/", "0")

	err := c.Press(KeyEquals)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, ErrorToken, c.Display())

	press(t, c, "7")
	assert.Equal(t, "Error7", c.Display())
	assert.Error(t, c.Press(KeyEquals))
	assert.Equal(t, ErrorToken, c.Display())
}

func TestCalculator_EqualsOnEmpty(t *testing.T) {
	c := NewCalculator()
	assert.ErrorIs(t, c.Press(KeyEquals), ErrInvalidExpression)
	assert.Equal(t, ErrorToken, c.Display())
}

func TestCalculator_Clear(t *testing.T) {
	c := NewCalculator()
	press(t, c, "4", "2")
	require.NoError(t, c.Press(KeyClear))
	assert.Equal(t, "", c.Display())
}

func TestCalculator_UnknownKey(t *testing.T) {
	c := NewCalculator()
	press(t, c, "5")
	assert.ErrorIs(t, c.Press("x"), ErrUnknownKey)
	assert.ErrorIs(t, c.Press("12"), ErrUnknownKey)
	assert.Equal(t, "5", c.Display())
}

func TestKeys_Layout(t *testing.T) {
	require.Len(t, Keys, 16)
	assert.Equal(t, []string{"7", "8", "9", "/"}, Keys[:4])
	assert.Equal(t, []string{"0", ".", "=", "+"}, Keys[12:])
}
