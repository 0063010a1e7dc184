// Package theme supplies panel colors and turns them into lipgloss styles.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Colors are the values the panel consumes. MidBackground may be left empty,
// in which case it is blended from Background and SecondaryText.
type Colors struct {
	Background    string `yaml:"background"`
	SecondaryText string `yaml:"secondary_text"`
	MidBackground string `yaml:"mid_background,omitempty"`
	Text          string `yaml:"text,omitempty"`
}

// Theme is a named color set.
type Theme struct {
	Name   string
	Colors Colors
}

var (
	Light = Theme{Name: "light", Colors: Colors{
		Background:    "#FFFFFF",
		SecondaryText: "#72777D",
		MidBackground: "#EAECF0",
		Text:          "#222222",
	}}
	Sepia = Theme{Name: "sepia", Colors: Colors{
		Background:    "#F0E6D6",
		SecondaryText: "#646059",
		MidBackground: "#E1DAD1",
		Text:          "#222222",
	}}
	Dark = Theme{Name: "dark", Colors: Colors{
		Background:    "#27292D",
		SecondaryText: "#A2A9B1",
		Text:          "#FFFFFF",
	}}
	Black = Theme{Name: "black", Colors: Colors{
		Background:    "#000000",
		SecondaryText: "#A2A9B1",
		Text:          "#FFFFFF",
	}}

	builtin = map[string]Theme{
		Light.Name: Light,
		Sepia.Name: Sepia,
		Dark.Name:  Dark,
		Black.Name: Black,
	}
)

// Default is the theme used when none is configured.
var Default = Light

// Named looks up a built-in theme.
func Named(name string) (Theme, bool) {
	t, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the built-in theme after t, wrapping around.
func Next(t Theme) Theme {
	names := Names()
	for i, name := range names {
		if name == t.Name {
			return builtin[names[(i+1)%len(names)]]
		}
	}
	return Default
}

// Styles are the lipgloss styles a themed panel renders with.
type Styles struct {
	Body      lipgloss.Style
	Slider    lipgloss.Style
	Separator lipgloss.Style
	Muted     lipgloss.Style
}

// Themeable is implemented by views that restyle themselves.
type Themeable interface {
	ApplyTheme(t Theme)
}

// Apply derives the panel styles from t. It has no side effects.
func Apply(t Theme) Styles {
	c := t.Resolved()
	bg := lipgloss.Color(c.Background)
	return Styles{
		Body:      lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c.Text)),
		Slider:    lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c.SecondaryText)),
		Separator: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c.MidBackground)),
		Muted:     lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c.SecondaryText)).Italic(true),
	}
}

// Resolved returns the colors with derived values filled in.
func (t Theme) Resolved() Colors {
	c := t.Colors
	if c.MidBackground == "" {
		c.MidBackground = Blend(c.Background, c.SecondaryText, 0.25)
	}
	if c.Text == "" {
		c.Text = c.SecondaryText
	}
	return c
}

// Blend mixes two hex colors in Lab space; t=0 yields a, t=1 yields b.
// Unparseable input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Validate checks that every configured color parses.
func (c Colors) Validate() error {
	for name, value := range map[string]string{
		"background":     c.Background,
		"secondary_text": c.SecondaryText,
		"mid_background": c.MidBackground,
		"text":           c.Text,
	} {
		if value == "" && name != "background" && name != "secondary_text" {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("%s: invalid color %q", name, value)
		}
	}
	return nil
}
