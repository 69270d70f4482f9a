package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestThemeFor(t *testing.T) {
	assert.Equal(t, RosePineMoon, themeFor(true))
	assert.Equal(t, RosePineDawn, themeFor(false))
	assert.True(t, RosePineMoon.Dark)
	assert.False(t, RosePineDawn.Dark)
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"moon", "rose-pine-moon"} {
		th, ok := ThemeByName(name)
		assert.True(t, ok)
		assert.Equal(t, RosePineMoon.Name, th.Name)
	}
	th, ok := ThemeByName("dawn")
	assert.True(t, ok)
	assert.Equal(t, RosePineDawn.Base, th.Base)

	_, ok = ThemeByName("solarized")
	assert.False(t, ok)
}

func TestFormTheme(t *testing.T) {
	th := FormTheme(RosePineMoon)
	assert.Equal(t, RosePineMoon.Iris, th.Focused.Title.GetForeground())
	assert.Equal(t, RosePineMoon.Love, th.Focused.ErrorMessage.GetForeground())
}

func TestTheme_PaintBackground(t *testing.T) {
	var buf bytes.Buffer
	restore := RosePineMoon.PaintBackground(&buf)
	assert.Equal(t, "\x1b]11;#232136\x1b\\", buf.String())

	buf.Reset()
	restore()
	assert.Equal(t, "\x1b]111\x1b\\", buf.String())
}

func TestTheme_PaintBackgroundSkipsNonHex(t *testing.T) {
	for _, base := range []string{"", "4", "#12345", "#zzzzzz"} {
		var buf bytes.Buffer
		restore := Theme{Base: lipgloss.Color(base)}.PaintBackground(&buf)
		restore()
		assert.Zero(t, buf.Len(), base)
	}
}
