package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/gesture"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	"github.com/alexisbeaulieu97/overlay/internal/panel"
	"github.com/alexisbeaulieu97/overlay/internal/theme"
)

// frameMsg advances a running layout animation by one frame.
type frameMsg struct{}

// Model is the Bubbletea program hosting a snapping panel.
type Model struct {
	host       *Host
	panel      *panel.Controller
	recognizer *gesture.Recognizer
	log        *logger.Logger

	theme  theme.Theme
	styles theme.Styles
	keys   keyMap
	help   help.Model

	now func() time.Time

	ticking   bool
	lastPhase string
}

// NewModel builds the panel, its terminal host and gesture recognizer from cfg.
func NewModel(cfg config.Config, log *logger.Logger) Model {
	host := NewHost(Geometry{
		TopAnchor:     cfg.Panel.TopAnchor,
		BottomInset:   cfg.Panel.BottomInset,
		HostMinHeight: cfg.Panel.HostMinHeight,
		SliderHeight:  cfg.Panel.SliderHeight,
		Margin:        cfg.Panel.Margin,
	}, cfg.Animation.FPS)
	ctrl := panel.New(host, cfg.PanelConfig(), log)

	m := Model{
		host:       host,
		panel:      ctrl,
		recognizer: gesture.NewRecognizer(ctrl.ShouldAcceptTouch),
		log:        log.WithFields(map[string]any{"component": "tui"}),
		keys:       defaultKeyMap(),
		help:       help.New(),
		now:        time.Now,
	}
	m.ApplyTheme(cfg.ResolveTheme())
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// ApplyTheme restyles the panel.
func (m *Model) ApplyTheme(t theme.Theme) {
	m.theme = t
	m.styles = theme.Apply(t)
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.theme
}

// Panel exposes the controller driving the panel.
func (m Model) Panel() *panel.Controller {
	return m.panel
}

// Host exposes the terminal layout host.
func (m Model) Host() *Host {
	return m.host
}

// scheduleFrame requests the next animation frame if one is needed and none
// is pending.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || !m.host.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.host.Frame(), func(time.Time) tea.Msg { return frameMsg{} })
}

var _ theme.Themeable = (*Model)(nil)
