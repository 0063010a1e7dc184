package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/overlay/internal/gesture"
	"github.com/alexisbeaulieu97/overlay/internal/panel"
	"github.com/alexisbeaulieu97/overlay/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		// Commits made before the terminal had room, including the
		// initial placement, land here.
		m.panel.Resume()
		return m, m.scheduleFrame()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		m.ticking = false
		m.host.Step()
		return m, m.scheduleFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Collapse):
		m.commit(panel.Collapsed)
	case key.Matches(msg, m.keys.Half):
		m.commit(panel.Half)
	case key.Matches(msg, m.keys.Expand):
		m.commit(panel.Expanded)
	case key.Matches(msg, m.keys.Resizable):
		m.panel.SetResizable(!m.panel.IsResizable())
	case key.Matches(msg, m.keys.Theme):
		m.ApplyTheme(theme.Next(m.theme))
	case key.Matches(msg, m.keys.Cancel):
		m.feed(gesture.Pointer{Action: gesture.Cancel, Time: m.now()})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, m.scheduleFrame()
}

func (m *Model) commit(state panel.State) {
	if m.recognizer.Active() {
		return
	}
	m.panel.SetState(state, 0, true)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := gesture.Pointer{
		Location: panel.Point{X: float64(msg.X), Y: float64(msg.Y)},
		Time:     m.now(),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		p.Action = gesture.Press
	case tea.MouseActionMotion:
		if !dragButton(msg.Button) {
			return m, nil
		}
		p.Action = gesture.Motion
	case tea.MouseActionRelease:
		if !dragButton(msg.Button) {
			return m, nil
		}
		p.Action = gesture.Release
	default:
		return m, nil
	}

	m.feed(p)
	return m, m.scheduleFrame()
}

// dragButton reports whether a motion or release belongs to a left-button
// drag. X10 mouse reporting does not say which button was released.
func dragButton(b tea.MouseButton) bool {
	return b == tea.MouseButtonLeft || b == tea.MouseButtonNone
}

func (m *Model) feed(p gesture.Pointer) {
	ev, ok := m.recognizer.Handle(p)
	if !ok {
		return
	}
	m.lastPhase = ev.Phase.String()
	if ev.Phase.Terminal() {
		m.log.WithFields(map[string]any{
			"phase":       ev.Phase.String(),
			"translation": ev.Translation.Y,
			"velocity":    ev.Velocity.Y,
		}).Debug("drag finished")
	}
	gesture.Dispatch(m.panel, ev)
}
