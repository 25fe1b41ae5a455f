package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/ngmaloney/sailing-score/internal/api"
	"github.com/ngmaloney/sailing-score/internal/models"
	"github.com/ngmaloney/sailing-score/internal/session"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch       AppState = iota // Free-text location search
	StateLocationList                 // Pick one of the geocoding candidates
	StateLoading                      // Waiting for geocoding or scoring
	StateDisplay                      // Forecast for the selected location
	StateDetail                       // Detail of one forecast window
)

// Banner texts shown for failed operations.
const (
	bannerNoLocation = "Por favor, selecciona una ubicación"
	bannerScore      = "Error al obtener los datos. Por favor, intenta de nuevo."
	bannerGeocode    = "Error al buscar ubicación"
	bannerNoResults  = "No se encontraron ubicaciones"
	bannerInvalid    = "Revisa el tipo de barco y el nivel seleccionados"
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int

	// banner is the user-facing message of the last failure
	banner string

	session *session.Session

	// Search
	searchInput textinput.Model
	searchQuery string

	locationList list.Model

	// API clients
	geocoder api.Geocoder
	scorer   api.Scorer
	timeout  time.Duration

	// cursor indexes session.VisibleWindows()
	cursor int

	spinner     spinner.Model
	loadingText string
}

// NewModel creates a new application model
func NewModel(sess *session.Session, geocoder api.Geocoder, scorer api.Scorer, timeout time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "Busca un puerto o ciudad (p. ej. Barcelona, Palma)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return Model{
		state:       StateSearch,
		session:     sess,
		searchInput: ti,
		geocoder:    geocoder,
		scorer:      scorer,
		timeout:     timeout,
		spinner:     s,
	}
}

// WithQuery pre-fills the search box. The search runs as soon as the
// program starts.
func (m Model) WithQuery(query string) Model {
	m.searchInput.SetValue(query)
	m.searchQuery = query
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.searchQuery == "" {
		return textinput.Blink
	}
	seq, err := m.session.BeginGeocode(m.searchQuery)
	if err != nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, geocodeLocation(m.geocoder, seq, m.searchQuery, m.timeout))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateLocationList {
			m.locationList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case geocodeMsg:
		return m.handleGeocodeResult(msg)

	case scoreMsg:
		return m.handleScoreResult(msg)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// In search, q is just a letter.
		if msg.String() == "q" && m.state != StateSearch {
			return m, tea.Quit
		}

		switch m.state {
		case StateSearch:
			return m.handleSearchInput(msg)
		case StateLocationList:
			return m.handleLocationList(msg)
		case StateDisplay:
			return m.handleDisplay(msg)
		case StateDetail:
			return m.handleDetail(msg)
		}
		return m, nil
	}

	switch m.state {
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateLocationList:
		m.locationList, cmd = m.locationList.Update(msg)
	}
	return m, cmd
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Esc returns to the current forecast, if there is one
	if msg.Type == tea.KeyEsc && m.session.Location != nil {
		m.state = StateDisplay
		m.searchInput.Blur()
		return m, nil
	}
	if msg.Type == tea.KeyTab {
		return m.calculate()
	}

	if msg.Type != tea.KeyEnter {
		m.banner = ""
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	query := m.searchInput.Value()
	seq, err := m.session.BeginGeocode(query)
	if err != nil {
		// Too short or already searching: nothing to send.
		return m, nil
	}
	m.searchQuery = query
	m.banner = ""
	m.state = StateLoading
	m.loadingText = fmt.Sprintf("Buscando \"%s\"...", query)
	return m, tea.Batch(m.spinner.Tick, geocodeLocation(m.geocoder, seq, query, m.timeout))
}

func (m Model) handleGeocodeResult(msg geocodeMsg) (tea.Model, tea.Cmd) {
	if !m.session.ApplyGeocode(msg.seq, msg.results, msg.err) {
		return m, nil
	}

	if msg.err != nil {
		log.Error("geocoding failed", "query", m.searchQuery, "err", msg.err)
		m.banner = bannerGeocode
		return m.backToSearch()
	}
	if len(m.session.Candidates) == 0 {
		m.banner = bannerNoResults
		return m.backToSearch()
	}

	m.locationList = createLocationList(m.session.Candidates, m.width-4, m.height-10)
	m.state = StateLocationList
	return m, nil
}

// handleLocationList handles keyboard input in location list state
func (m Model) handleLocationList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case msg.Type == tea.KeyEnter:
		if item, ok := m.locationList.SelectedItem().(locationItem); ok {
			m.session.SelectLocation(item.location)
			m.cursor = 0
			m.banner = ""
			m.state = StateDisplay
			m.searchInput.Blur()
		}
		return m, nil
	case msg.String() == "s" || msg.Type == tea.KeyEsc:
		return m.backToSearch()
	}

	m.locationList, cmd = m.locationList.Update(msg)
	return m, cmd
}

// handleDisplay handles keyboard input in the forecast view
func (m Model) handleDisplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.searchInput.SetValue("")
		return m.backToSearch()
	case "c":
		return m.calculate()
	case "b":
		m.session.CycleBoatType()
	case "k":
		m.session.CycleSkill()
	case "u":
		m.session.ToggleUnits()
	case "n":
		m.session.ToggleNight()
		m.cursor = 0
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up":
		m.moveDay(-1)
	case "down":
		m.moveDay(1)
	case "enter":
		windows := m.session.VisibleWindows()
		if m.cursor < len(windows) {
			m.session.SelectWindow(windows[m.cursor])
			m.state = StateDetail
		}
	}
	return m, nil
}

// handleDetail handles keyboard input in the detail view
func (m Model) handleDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyBackspace:
		m.session.ClearSelection()
		m.state = StateDisplay
	}
	return m, nil
}

// calculate requests a new score for the current selections
func (m Model) calculate() (tea.Model, tea.Cmd) {
	seq, req, err := m.session.BeginScore()
	switch {
	case errors.Is(err, session.ErrNoLocation):
		m.banner = bannerNoLocation
		return m, nil
	case err != nil:
		return m, nil
	}

	m.banner = ""
	m.state = StateLoading
	m.loadingText = "Calculando previsión..."
	if m.session.Location != nil {
		m.loadingText = fmt.Sprintf("Calculando previsión para %s...", m.session.Location.Name)
	}
	return m, tea.Batch(m.spinner.Tick, fetchScore(m.scorer, seq, req, m.timeout))
}

func (m Model) handleScoreResult(msg scoreMsg) (tea.Model, tea.Cmd) {
	if !m.session.ApplyScore(msg.seq, msg.resp, msg.err) {
		return m, nil
	}

	m.state = StateDisplay
	if errors.Is(msg.err, api.ErrInvalidRequest) {
		log.Warn("score request rejected locally", "err", msg.err)
		m.banner = bannerInvalid
		return m, nil
	}
	if msg.err != nil {
		log.Error("scoring failed", "err", msg.err)
		m.banner = bannerScore
		return m, nil
	}
	m.banner = ""
	m.cursor = 0
	return m, nil
}

func (m Model) backToSearch() (tea.Model, tea.Cmd) {
	m.state = StateSearch
	m.searchInput.Focus()
	return m, textinput.Blink
}

func (m *Model) moveCursor(delta int) {
	n := len(m.session.VisibleWindows())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// moveDay jumps the cursor to the first slot of the previous or next day.
func (m *Model) moveDay(delta int) {
	days := m.session.Days()
	day, _ := m.cursorPosition(days)
	target := day + delta
	if target < 0 || target >= len(days) {
		return
	}
	idx := 0
	for i := 0; i < target; i++ {
		idx += len(days[i].Windows)
	}
	m.cursor = idx
}

// cursorPosition maps the flat cursor onto day and slot indexes.
func (m Model) cursorPosition(days []models.DayGroup) (int, int) {
	rest := m.cursor
	for i, d := range days {
		if rest < len(d.Windows) {
			return i, rest
		}
		rest -= len(d.Windows)
	}
	return 0, 0
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Cargando..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateLocationList:
		return m.viewLocationList()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateDetail:
		return m.viewDetail()
	}

	return ""
}

func (m Model) renderBanner() string {
	if m.banner == "" {
		return ""
	}
	return errorStyle.Render("✗ " + m.banner)
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("⛵ Sailing Day Score")
	subtitle := mutedStyle.Render("¿Es buen día para navegar?")

	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(64).
		Render(m.searchInput.View())

	helpText := "Enter: Buscar • Tab: Calcular • Ctrl+C: Salir"
	if m.session.Location != nil {
		helpText = "Enter: Buscar • Tab: Calcular • Esc: Volver a la previsión • Ctrl+C: Salir"
	}

	var sections []string
	sections = append(sections, title, subtitle, "", searchBox)
	if m.banner != "" {
		sections = append(sections, "", m.renderBanner())
	}
	sections = append(sections,
		"",
		mutedStyle.Render("Ejemplos: Barcelona | Palma | Cádiz | A Coruña"),
		"",
		helpStyle.Render(helpText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLocationList renders the candidate selection list
func (m Model) viewLocationList() string {
	title := titleStyle.Render("⛵ Ubicaciones")
	subtitle := mutedStyle.Render(fmt.Sprintf("%d resultados para \"%s\"", len(m.session.Candidates), m.searchQuery))
	help := helpStyle.Render("↑/↓: Navegar • Enter: Seleccionar • S/Esc: Volver • Q: Salir")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		m.locationList.View(),
		"",
		help,
	)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), m.loadingText),
	)
}
