package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestNamedThemes(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"black", "dark", "light", "sepia"}, Names())

	for _, name := range Names() {
		th, ok := Named(name)
		require.True(t, ok)
		require.Equal(t, name, th.Name)
		require.NoError(t, th.Resolved().Validate())
	}

	th, ok := Named("  Dark ")
	require.True(t, ok)
	require.Equal(t, Dark, th)

	_, ok = Named("neon")
	require.False(t, ok)
}

func TestNextCycles(t *testing.T) {
	t.Parallel()

	require.Equal(t, Dark, Next(Black))
	require.Equal(t, Black, Next(Sepia))
	require.Equal(t, Default, Next(Theme{Name: "custom"}))
}

func TestResolvedBlendsMissingMidBackground(t *testing.T) {
	t.Parallel()

	c := Dark.Resolved()
	require.NotEmpty(t, c.MidBackground)
	require.NotEqual(t, c.Background, c.MidBackground)
	require.NotEqual(t, c.SecondaryText, c.MidBackground)

	require.Equal(t, Light.Colors.MidBackground, Light.Resolved().MidBackground)
}

func TestBlend(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	require.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	require.Equal(t, "nope", Blend("nope", "#ffffff", 0.5))
	require.Equal(t, "#000000", Blend("#000000", "nope", 0.5))
}

func TestApplyIsPure(t *testing.T) {
	t.Parallel()

	first := Apply(Sepia)
	second := Apply(Sepia)
	require.Equal(t, first.Slider.GetForeground(), second.Slider.GetForeground())
	require.Equal(t, Sepia.Colors.SecondaryText, string(first.Slider.GetForeground().(lipgloss.Color)))
	require.Equal(t, Sepia.Colors.MidBackground, string(first.Separator.GetForeground().(lipgloss.Color)))
	require.Equal(t, Sepia.Colors.Background, string(first.Body.GetBackground().(lipgloss.Color)))
}

func TestColorsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Colors{Background: "#101010", SecondaryText: "#eeeeee"}.Validate())
	require.Error(t, Colors{Background: "black", SecondaryText: "#eeeeee"}.Validate())
	require.Error(t, Colors{Background: "#101010"}.Validate())
}
