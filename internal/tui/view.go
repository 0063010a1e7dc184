package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const handleGlyph = "━━━━━━"

// View renders the current state of the model.
func (m Model) View() string {
	width, height := m.host.Size()
	if width == 0 || height == 0 {
		return "Initializing..."
	}

	geo := m.host.Geometry()
	lines := make([]string, height)
	lines[0] = m.renderStatus(width)

	top := int(geo.TopAnchor)
	rows := m.host.RenderedRows()
	for i, line := range m.renderPanel(width-2*geo.Margin, rows, int(geo.SliderHeight)) {
		row := top + i
		if row >= 0 && row < height {
			lines[row] = strings.Repeat(" ", geo.Margin) + line
		}
	}

	if height > 1 {
		lines[height-1] = m.help.View(m.keys)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderStatus(width int) string {
	resizable := "locked"
	if m.panel.IsResizable() {
		resizable = "resizable"
	}
	status := fmt.Sprintf("overlay • %s • %s • %s • theme %s",
		m.panel.State(), m.panel.Mode(), resizable, m.theme.Name)
	if m.lastPhase != "" {
		status += " • drag " + m.lastPhase
	}
	return lipgloss.NewStyle().Bold(true).MaxWidth(width).Render(status)
}

// renderPanel draws rows lines of width columns: body, a separator, and the
// slider region holding the grab handle.
func (m Model) renderPanel(width, rows, slider int) []string {
	if width <= 0 || rows <= 0 {
		return nil
	}
	if slider > rows {
		slider = rows
	}

	body := m.bodyLines(rows - slider)
	out := make([]string, 0, rows)
	for i := 0; i < rows-slider; i++ {
		if i == rows-slider-1 && i > 0 {
			out = append(out, m.styles.Separator.Width(width).Render(strings.Repeat("─", width)))
			continue
		}
		text := ""
		if i < len(body) {
			text = body[i]
		}
		out = append(out, m.styles.Body.Width(width).MaxWidth(width).Render(" "+text))
	}

	for i := 0; i < slider; i++ {
		glyph := ""
		if i == slider/2 {
			glyph = handleGlyph
		}
		line := lipgloss.PlaceHorizontal(width, lipgloss.Center, glyph)
		out = append(out, m.styles.Slider.Width(width).MaxWidth(width).Render(line))
	}
	return out
}

func (m Model) bodyLines(limit int) []string {
	if limit <= 0 {
		return nil
	}
	lines := []string{
		fmt.Sprintf("Panel  %s", m.panel.State()),
		fmt.Sprintf("Height %.0f rows", m.host.RenderedHeight()),
	}
	if baseline, dragging := m.panel.Baseline(); dragging {
		lines = append(lines, fmt.Sprintf("Drag from %.0f", baseline))
	}
	b := m.panel.Bounds()
	lines = append(lines,
		fmt.Sprintf("Snaps  %.0f / %.0f / %.0f", b.Min, b.Half, b.Max),
		m.styles.Muted.Render("Drag the handle or press c, h, e"),
	)
	if len(lines) > limit {
		lines = lines[:limit]
	}
	return lines
}
