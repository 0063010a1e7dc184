package config

import (
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/panel"
	"github.com/alexisbeaulieu97/overlay/internal/spring"
	"github.com/alexisbeaulieu97/overlay/internal/theme"
)

// Config represents the full overlay configuration document.
type Config struct {
	Panel     PanelSettings     `yaml:"panel"`
	Animation AnimationSettings `yaml:"animation"`
	Theme     string            `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Colors    *theme.Colors     `yaml:"colors,omitempty"`
	LogLevel  string            `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

// PanelSettings holds panel geometry, measured in terminal rows.
type PanelSettings struct {
	HalfHeight    float64 `yaml:"half_height" validate:"gt=0"`
	SliderHeight  float64 `yaml:"slider_height" validate:"gte=0"`
	BottomInset   float64 `yaml:"bottom_inset" validate:"gte=0"`
	TopAnchor     float64 `yaml:"top_anchor" validate:"gte=0"`
	HostMinHeight float64 `yaml:"host_min_height" validate:"gte=0"`
	Margin        int     `yaml:"margin" validate:"gte=0,lte=40"`
	InitialState  string  `yaml:"initial_state,omitempty" validate:"omitempty,panel_state"`
	Resizable     bool    `yaml:"resizable"`
}

// AnimationSettings tunes the snap spring.
type AnimationSettings struct {
	Duration time.Duration `yaml:"duration" validate:"gt=0"`
	Damping  float64       `yaml:"damping" validate:"gt=0,lte=1"`
	FPS      int           `yaml:"fps" validate:"min=1,max=240"`
}

// Default returns the configuration used when no file is supplied. Unlike a
// bare panel.Controller, the shipped panel starts resizable.
func Default() Config {
	return Config{
		Panel: PanelSettings{
			HalfHeight:    12,
			SliderHeight:  1,
			BottomInset:   1,
			TopAnchor:     2,
			HostMinHeight: 2,
			Margin:        2,
			InitialState:  panel.Half.String(),
			Resizable:     true,
		},
		Animation: AnimationSettings{
			Duration: panel.DefaultDuration,
			Damping:  panel.DefaultDamping,
			FPS:      spring.DefaultFPS,
		},
		Theme:    theme.Default.Name,
		LogLevel: "info",
	}
}

// PanelConfig converts the settings into controller tuning.
func (c Config) PanelConfig() panel.Config {
	state := panel.Half
	if c.Panel.InitialState != "" {
		if parsed, err := panel.ParseState(c.Panel.InitialState); err == nil {
			state = parsed
		}
	}
	return panel.Config{
		HalfHeight:   c.Panel.HalfHeight,
		SliderHeight: c.Panel.SliderHeight,
		Duration:     c.Animation.Duration,
		Damping:      c.Animation.Damping,
		InitialState: state,
		Resizable:    c.Panel.Resizable,
	}
}

// ResolveTheme returns the configured theme. Explicit colors take precedence
// over a theme name.
func (c Config) ResolveTheme() theme.Theme {
	if c.Colors != nil {
		return theme.Theme{Name: "custom", Colors: *c.Colors}
	}
	if t, ok := theme.Named(c.Theme); ok {
		return t
	}
	return theme.Default
}
