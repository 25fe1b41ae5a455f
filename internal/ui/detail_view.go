package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewDetail renders the detail of the selected window
func (m Model) viewDetail() string {
	d, ok := m.session.Detail()
	if !ok {
		return "No hay franja seleccionada"
	}

	var sections []string

	title := titleStyle.Render(fmt.Sprintf("⛵ %s", d.Heading))
	if m.session.Location != nil {
		title += mutedStyle.Render("  " + m.session.Location.Name)
	}
	sections = append(sections, title)

	summary := fmt.Sprintf("%s %s · %s",
		bandBadge(d.Score),
		bandStyle(d.Band).Render(d.Label),
		d.BriefReason,
	)
	sections = append(sections, "", summary, "", lipgloss.NewStyle().Width(70).Render(d.Narrative))

	var metrics strings.Builder
	for i, metric := range d.Metrics {
		if i > 0 {
			metrics.WriteString("\n")
		}
		metrics.WriteString(labelStyle.Render(metric.Label + ": "))
		metrics.WriteString(valueStyle.Render(metric.Value))
	}
	sections = append(sections, sectionHeaderStyle.Render("Datos"), sectionBoxStyle.Render(metrics.String()))

	if len(d.Reasons) > 0 {
		lines := make([]string, len(d.Reasons))
		for i, r := range d.Reasons {
			lines[i] = successStyle.Render("✓ ") + r
		}
		sections = append(sections, sectionHeaderStyle.Render("Motivos"), strings.Join(lines, "\n"))
	}

	if len(d.Flags) > 0 {
		lines := make([]string, len(d.Flags))
		for i, f := range d.Flags {
			lines[i] = warningStyle.Render("⚠ " + f)
		}
		sections = append(sections, sectionHeaderStyle.Render("Avisos"), strings.Join(lines, "\n"))
	}

	sections = append(sections, helpStyle.Render("Esc/Enter: Volver • Q: Salir"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
