package session

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/ngmaloney/sailing-score/internal/forecast"
	"github.com/ngmaloney/sailing-score/internal/models"
)

var (
	// ErrNoLocation is returned when a score is requested before a location is chosen.
	ErrNoLocation = errors.New("no location selected")
	// ErrBusy is returned when the same kind of request is already in flight.
	ErrBusy = errors.New("request already in progress")
	// ErrQueryTooShort is returned for geocoding queries that are not worth sending.
	ErrQueryTooShort = errors.New("query too short")
)

// Options seeds a new session from configuration.
type Options struct {
	BoatType  models.BoatType
	Skill     models.SkillLevel
	UseKnots  bool
	ShowNight bool
	Timezone  string
}

// Session owns the state shared by every view: the chosen location, the
// active forecast, the selected window and the in-flight request flags.
//
// Each request kind carries a sequence number. Only the result of the most
// recently issued request is applied; anything older is dropped.
type Session struct {
	Location   *models.GeocodeResult
	Candidates []models.GeocodeResult
	BoatType   models.BoatType
	Skill      models.SkillLevel
	UseKnots   bool
	ShowNight  bool
	Timezone   string

	Response *models.ScoreResponse
	Selected *models.WindowScore
	Err      error

	Geocoding bool
	Scoring   bool

	loc        *time.Location
	geocodeSeq uint64
	scoreSeq   uint64
	now        func() time.Time
}

// New creates a session. An unloadable timezone falls back to UTC.
func New(opts Options) *Session {
	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil || opts.Timezone == "" {
		log.Warn("unknown timezone, using UTC", "timezone", opts.Timezone)
		loc = time.UTC
		opts.Timezone = "UTC"
	}
	return &Session{
		BoatType:  opts.BoatType,
		Skill:     opts.Skill,
		UseKnots:  opts.UseKnots,
		ShowNight: opts.ShowNight,
		Timezone:  opts.Timezone,
		loc:       loc,
		now:       time.Now,
	}
}

// DisplayLocation is the timezone used for hours and day headings.
func (s *Session) DisplayLocation() *time.Location {
	return s.loc
}

// BeginGeocode registers a new geocoding request and returns its sequence
// number. Queries shorter than two characters once trimmed clear the
// candidates and return ErrQueryTooShort.
func (s *Session) BeginGeocode(query string) (uint64, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		s.Candidates = nil
		return 0, ErrQueryTooShort
	}
	if s.Geocoding {
		return 0, ErrBusy
	}
	s.Geocoding = true
	s.Err = nil
	s.geocodeSeq++
	return s.geocodeSeq, nil
}

// ApplyGeocode stores the outcome of request seq. It reports false when the
// result was stale and discarded. A failure keeps the previous candidates.
func (s *Session) ApplyGeocode(seq uint64, results []models.GeocodeResult, err error) bool {
	if seq != s.geocodeSeq {
		log.Debug("discarding stale geocode result", "seq", seq, "latest", s.geocodeSeq)
		return false
	}
	s.Geocoding = false
	if err != nil {
		s.Err = err
		return true
	}
	s.Candidates = results
	return true
}

// SelectLocation makes loc the active location. The previous forecast is
// cleared and any score request still in flight is invalidated.
func (s *Session) SelectLocation(loc models.GeocodeResult) {
	s.Location = &loc
	s.Candidates = nil
	s.Response = nil
	s.Selected = nil
	s.Err = nil
	s.invalidateScore()
}

// BeginScore validates the current selections and registers a new score
// request. The request date is today in the display timezone.
func (s *Session) BeginScore() (uint64, models.ScoreRequest, error) {
	if s.Location == nil {
		s.Err = ErrNoLocation
		return 0, models.ScoreRequest{}, ErrNoLocation
	}
	if s.Scoring {
		return 0, models.ScoreRequest{}, ErrBusy
	}

	req := models.ScoreRequest{
		Lat:      s.Location.Lat,
		Lon:      s.Location.Lon,
		BoatType: s.BoatType,
		Skill:    s.Skill,
		Date:     s.now().In(s.loc).Format("2006-01-02"),
		Timezone: s.Timezone,
	}

	s.Scoring = true
	s.Err = nil
	s.scoreSeq++
	return s.scoreSeq, req, nil
}

// ApplyScore stores the outcome of request seq. A successful response
// replaces the previous one wholesale and clears the selection; a failure
// leaves the previous forecast untouched. It reports false for stale results.
func (s *Session) ApplyScore(seq uint64, resp *models.ScoreResponse, err error) bool {
	if seq != s.scoreSeq {
		log.Debug("discarding stale score result", "seq", seq, "latest", s.scoreSeq)
		return false
	}
	s.Scoring = false
	if err != nil {
		s.Err = err
		return true
	}
	s.Response = resp
	s.Selected = nil
	return true
}

func (s *Session) invalidateScore() {
	s.scoreSeq++
	s.Scoring = false
}

// Days returns the visible windows of the active forecast grouped per day.
func (s *Session) Days() []models.DayGroup {
	if s.Response == nil {
		return []models.DayGroup{}
	}
	return forecast.VisibleDays(s.Response.Windows, s.ShowNight, s.loc)
}

// VisibleWindows flattens Days in display order.
func (s *Session) VisibleWindows() []models.WindowScore {
	var out []models.WindowScore
	for _, d := range s.Days() {
		out = append(out, d.Windows...)
	}
	return out
}

// Best returns the best window of the whole forecast. The server's pick is
// used when present.
func (s *Session) Best() (models.WindowScore, bool) {
	if s.Response == nil {
		return models.WindowScore{}, false
	}
	if s.Response.BestWindow != nil {
		return *s.Response.BestWindow, true
	}
	return forecast.SelectBest(s.Response.Windows)
}

// SelectWindow opens the detail view for w.
func (s *Session) SelectWindow(w models.WindowScore) {
	s.Selected = &w
}

// ClearSelection closes the detail view.
func (s *Session) ClearSelection() {
	s.Selected = nil
}

// Detail builds the detail view of the selected window.
func (s *Session) Detail() (forecast.Detail, bool) {
	if s.Selected == nil {
		return forecast.Detail{}, false
	}
	return forecast.BuildDetail(*s.Selected, s.Skill, s.BoatType, s.UseKnots, s.loc), true
}

// ToggleNight flips night slot visibility.
func (s *Session) ToggleNight() {
	s.ShowNight = !s.ShowNight
}

// ToggleUnits flips between knots and m/s.
func (s *Session) ToggleUnits() {
	s.UseKnots = !s.UseKnots
}

// CycleBoatType moves to the next boat type.
func (s *Session) CycleBoatType() {
	s.BoatType = s.BoatType.Next()
}

// CycleSkill moves to the next skill level.
func (s *Session) CycleSkill() {
	s.Skill = s.Skill.Next()
}

// Limits returns the default safety limits for the current skill.
func (s *Session) Limits() models.SafetyLimits {
	return models.SafetyLimitsFor(s.Skill)
}
