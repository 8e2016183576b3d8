package theme

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.Writer.Profile = colorprofile.Ascii
}

func TestCurrent_IsMocha(t *testing.T) {
	th := Current()
	require.NotNil(t, th)
	assert.Equal(t, "catppuccin-mocha", th.Name)
	assert.True(t, th.IsDark)
	assert.Same(t, th, Current())
}

func TestStyles_Lazy(t *testing.T) {
	th := NewCatppuccinMocha()
	s := th.S()
	require.NotNil(t, s)
	assert.Same(t, s, th.S())
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	assert.Equal(t, uint8(0xcb), r)
	assert.Equal(t, uint8(0xa6), g)
	assert.Equal(t, uint8(0xf7), b)

	r, g, b = ParseHexColor("nope")
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestInterpolateColor(t *testing.T) {
	assert.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	assert.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
	assert.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 3), "position is clamped")
}

func TestApplyGradient(t *testing.T) {
	assert.Equal(t, "", ApplyGradient("", "#000000", "#ffffff"))
	assert.Equal(t, "tripwise", ansi.Strip(ApplyGradient("tripwise", "#cba6f7", "#89b4fa")))
}
