package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/sailing-score/internal/forecast"
	"github.com/ngmaloney/sailing-score/internal/models"
)

const disclaimer = "Datos de previsión meteorológica y marina. Valora siempre las condiciones reales antes de salir."

// viewDisplay renders the forecast for the selected location
func (m Model) viewDisplay() string {
	s := m.session
	if s.Location == nil {
		return "No hay ubicación seleccionada"
	}

	var sections []string

	header := titleStyle.Render(fmt.Sprintf("⛵ %s", s.Location.Name))
	if region := s.Location.Region(); region != "" {
		header += mutedStyle.Render("  " + region)
	}
	sections = append(sections, header, m.renderSettings())

	if m.banner != "" {
		sections = append(sections, "", m.renderBanner())
	}

	if s.Response == nil {
		sections = append(sections,
			"",
			mutedStyle.Render("Pulsa C para calcular la previsión de los próximos 5 días."),
		)
	} else {
		if safety := m.renderSafety(); safety != "" {
			sections = append(sections, "", safety)
		}
		sections = append(sections,
			m.renderBestWindow(),
			sectionHeaderStyle.Render(nightHeader(s.ShowNight)),
			m.renderDays(),
			mutedStyle.Render(disclaimer),
		)
	}

	help := helpStyle.Render("←/→: Franja • ↑/↓: Día • Enter: Detalle • C: Calcular • B: Barco • K: Nivel • U: Unidades • N: Noche • S: Buscar • Q: Salir")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSettings renders the current boat, skill and unit choices
func (m Model) renderSettings() string {
	s := m.session
	limits := s.Limits()

	units := "kn"
	if !s.UseKnots {
		units = "m/s"
	}
	night := "ocultas"
	if s.ShowNight {
		night = "visibles"
	}

	line := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		labelStyle.Render("Barco:"), valueStyle.Render(s.BoatType.Label()),
		labelStyle.Render("Nivel:"), valueStyle.Render(s.Skill.Label()),
		labelStyle.Render("Unidades:"), valueStyle.Render(units),
		labelStyle.Render("Noche:"), valueStyle.Render(night),
	)
	limitsLine := mutedStyle.Render(fmt.Sprintf("Límites de seguridad: viento mín. %s · viento máx. %s · rachas %s · ola %.1f m",
		forecast.DisplaySpeed(limits.MinWindKn, s.UseKnots),
		forecast.DisplaySpeed(limits.MaxWindKn, s.UseKnots),
		forecast.DisplaySpeed(limits.MaxGustKn, s.UseKnots),
		limits.MaxWaveM,
	))
	return line + "\n" + limitsLine
}

// renderSafety renders the no-go banner, or nothing when conditions are within limits
func (m Model) renderSafety() string {
	safety := m.session.Response.Safety
	if !safety.NoGo {
		return ""
	}
	var b strings.Builder
	b.WriteString("⚠ NO SALIR: condiciones fuera de los límites de seguridad")
	for _, why := range safety.Why {
		b.WriteString("\n  • " + why)
	}
	return dangerBoxStyle.Render(b.String())
}

// renderBestWindow renders the summary of the best window of the forecast
func (m Model) renderBestWindow() string {
	s := m.session
	best, ok := s.Best()
	if !ok {
		return sectionBoxStyle.Render(mutedStyle.Render("No hay franjas disponibles"))
	}

	band := forecast.Classify(best.Score)
	var b strings.Builder
	b.WriteString(labelStyle.Render("Mejor ventana"))
	b.WriteString("\n")
	b.WriteString(valueStyle.Bold(true).Render(forecast.FormatDateTime(best.Time, s.DisplayLocation())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s · %s",
		bandBadge(best.Score),
		bandStyle(band).Render(best.Label),
		forecast.BriefReason(best.Raw),
	))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Viento %s · Rachas %s",
		forecast.DisplaySpeed(best.Raw.WindKn, s.UseKnots),
		forecast.DisplaySpeed(best.Raw.GustKn, s.UseKnots),
	)))
	return sectionBoxStyle.Render(b.String())
}

// renderDays renders one row of slots per day
func (m Model) renderDays() string {
	s := m.session
	days := s.Days()
	if len(days) == 0 {
		return mutedStyle.Render("No hay franjas en el horario seleccionado")
	}

	loc := s.DisplayLocation()
	idx := 0
	var rows []string
	for _, day := range days {
		best := forecast.DayBest(day)
		heading := fmt.Sprintf("%s  %s %s",
			labelStyle.Render(forecast.FormatDay(day.Date, loc)),
			mutedStyle.Render("mejor "+forecast.FormatSlotTime(best.Time, loc)),
			bandBadge(best.Score),
		)

		slots := make([]string, 0, len(day.Windows))
		for _, w := range day.Windows {
			slots = append(slots, renderSlot(w, loc, idx == m.cursor))
			idx++
		}
		rows = append(rows, heading, lipgloss.JoinHorizontal(lipgloss.Top, slots...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSlot renders one window as a band-coloured box with its hour,
// score and flag count.
func renderSlot(w models.WindowScore, loc *time.Location, selected bool) string {
	band := forecast.Classify(w.Score)
	content := forecast.FormatSlotTime(w.Time, loc) + "\n" + bandStyle(band).Render(strconv.Itoa(w.Score))
	if n := len(w.Flags); n > 0 {
		content += " " + warningStyle.Render(fmt.Sprintf("⚠ %d", n))
	}

	style := slotStyle.BorderForeground(lipgloss.Color(band.Color()))
	if selected {
		style = selectedSlotStyle
	}
	return style.Render(content)
}

// nightHeader describes which slots are listed.
func nightHeader(showNight bool) string {
	if showNight {
		return "Mostrando todas las franjas (24h)"
	}
	return fmt.Sprintf("Mostrando franjas de %d:00 a %d:00", forecast.DayStartHour, forecast.DayEndHour)
}
