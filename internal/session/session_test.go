package session

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/ngmaloney/sailing-score/internal/models"
)

func newSession() *Session {
	s := New(Options{
		BoatType: models.BoatCruiser3545,
		Skill:    models.SkillIntermediate,
		UseKnots: true,
		Timezone: "Europe/Madrid",
	})
	// 23:30 UTC on 31 May is already 1 June in Madrid.
	s.now = func() time.Time { return time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC) }
	return s
}

var barcelona = models.GeocodeResult{Name: "Barcelona", Lat: 41.38, Lon: 2.17, Country: "España"}

func response(scores ...int) *models.ScoreResponse {
	resp := &models.ScoreResponse{}
	for i, sc := range scores {
		ts := time.Date(2024, 6, 1, 9+3*i, 0, 0, 0, time.UTC).Format("2006-01-02T15:04")
		resp.Windows = append(resp.Windows, models.WindowScore{Time: ts, Score: sc})
	}
	return resp
}

func TestNew_UnknownTimezone(t *testing.T) {
	s := New(Options{Timezone: "Mars/Olympus"})
	if s.DisplayLocation() != time.UTC || s.Timezone != "UTC" {
		t.Errorf("timezone = %s, want UTC fallback", s.Timezone)
	}
}

func TestBeginScore_RequiresLocation(t *testing.T) {
	s := newSession()

	_, _, err := s.BeginScore()
	if !errors.Is(err, ErrNoLocation) {
		t.Fatalf("BeginScore() error = %v, want ErrNoLocation", err)
	}
	if s.Scoring {
		t.Error("Scoring flag set for a request that never started")
	}
	if !errors.Is(s.Err, ErrNoLocation) {
		t.Error("validation error should be surfaced on the session")
	}
}

func TestBeginScore_BuildsRequest(t *testing.T) {
	s := newSession()
	s.SelectLocation(barcelona)

	seq, req, err := s.BeginScore()
	if err != nil {
		t.Fatalf("BeginScore() error = %v", err)
	}
	if seq == 0 {
		t.Error("sequence number should be positive")
	}
	if !s.Scoring {
		t.Error("Scoring flag should be set")
	}

	want := models.ScoreRequest{
		Lat:      41.38,
		Lon:      2.17,
		BoatType: models.BoatCruiser3545,
		Skill:    models.SkillIntermediate,
		Date:     "2024-06-01",
		Timezone: "Europe/Madrid",
	}
	if req != want {
		t.Errorf("request = %+v, want %+v", req, want)
	}

	if _, _, err := s.BeginScore(); !errors.Is(err, ErrBusy) {
		t.Errorf("second BeginScore() error = %v, want ErrBusy", err)
	}
}

func TestApplyScore_ReplacesAndClearsSelection(t *testing.T) {
	s := newSession()
	s.SelectLocation(barcelona)

	seq, _, _ := s.BeginScore()
	s.ApplyScore(seq, response(50, 70), nil)
	s.SelectWindow(s.Response.Windows[0])

	seq, _, _ = s.BeginScore()
	next := response(90)
	if !s.ApplyScore(seq, next, nil) {
		t.Fatal("ApplyScore() discarded the latest result")
	}
	if s.Response != next {
		t.Error("response was not replaced")
	}
	if s.Selected != nil {
		t.Error("selection should be cleared when the response is replaced")
	}
	if s.Scoring {
		t.Error("Scoring flag should clear")
	}
}

func TestApplyScore_FailureKeepsForecast(t *testing.T) {
	s := newSession()
	s.SelectLocation(barcelona)

	seq, _, _ := s.BeginScore()
	first := response(60)
	s.ApplyScore(seq, first, nil)

	seq, _, _ = s.BeginScore()
	s.ApplyScore(seq, nil, errors.New("boom"))

	if s.Response != first {
		t.Error("failed request should leave the previous forecast in place")
	}
	if s.Err == nil {
		t.Error("failure should be surfaced")
	}
	if s.Scoring {
		t.Error("Scoring flag should clear on failure")
	}
}

func TestApplyScore_DiscardsStale(t *testing.T) {
	s := newSession()
	s.SelectLocation(barcelona)

	staleSeq, _, _ := s.BeginScore()

	// Picking another location while the request is in flight invalidates it.
	s.SelectLocation(models.GeocodeResult{Name: "Palma", Lat: 39.57, Lon: 2.65})
	seq, _, err := s.BeginScore()
	if err != nil {
		t.Fatalf("BeginScore() after new location error = %v", err)
	}

	if s.ApplyScore(staleSeq, response(99), nil) {
		t.Error("stale result was applied")
	}
	if s.Response != nil {
		t.Error("stale result leaked into state")
	}
	if !s.Scoring {
		t.Error("stale result cleared the busy flag of the live request")
	}

	latest := response(40)
	if !s.ApplyScore(seq, latest, nil) || s.Response != latest {
		t.Error("latest result not applied")
	}
}

func TestSelectLocation_ClearsForecast(t *testing.T) {
	s := newSession()
	s.SelectLocation(barcelona)
	seq, _, _ := s.BeginScore()
	s.ApplyScore(seq, response(60), nil)

	s.SelectLocation(models.GeocodeResult{Name: "Palma"})
	if s.Response != nil || s.Selected != nil {
		t.Error("selecting a location should clear the forecast")
	}
	if s.Location.Name != "Palma" {
		t.Errorf("Location = %s, want Palma", s.Location.Name)
	}
}

func TestGeocodeFlow(t *testing.T) {
	s := newSession()

	if _, err := s.BeginGeocode("B"); !errors.Is(err, ErrQueryTooShort) {
		t.Errorf("BeginGeocode(B) error = %v, want ErrQueryTooShort", err)
	}
	if s.Geocoding {
		t.Error("short query should not set the busy flag")
	}

	seq, err := s.BeginGeocode("Barcelona")
	if err != nil {
		t.Fatalf("BeginGeocode() error = %v", err)
	}
	if _, err := s.BeginGeocode("Palma"); !errors.Is(err, ErrBusy) {
		t.Errorf("second BeginGeocode() error = %v, want ErrBusy", err)
	}

	if s.ApplyGeocode(seq-1, []models.GeocodeResult{{Name: "Old"}}, nil) {
		t.Error("stale geocode applied")
	}

	s.ApplyGeocode(seq, []models.GeocodeResult{barcelona}, nil)
	if s.Geocoding {
		t.Error("Geocoding flag should clear")
	}
	if len(s.Candidates) != 1 || s.Candidates[0].Name != "Barcelona" {
		t.Errorf("Candidates = %+v", s.Candidates)
	}

	seq, _ = s.BeginGeocode("Nowhere")
	s.ApplyGeocode(seq, nil, errors.New("down"))
	if s.Err == nil || s.Geocoding {
		t.Error("geocode failure should set Err and clear the busy flag")
	}
	if len(s.Candidates) != 1 || s.Candidates[0].Name != "Barcelona" {
		t.Errorf("Candidates = %+v, want previous results kept after a failure", s.Candidates)
	}
}

func TestBeginGeocode_TrimsQuery(t *testing.T) {
	tests := []struct {
		query   string
		wantErr error
	}{
		{"  a", ErrQueryTooShort},
		{"a  ", ErrQueryTooShort},
		{"   ", ErrQueryTooShort},
		{" Ñ ", ErrQueryTooShort},
		{"  Ibiza ", nil},
		{"Óz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			s := newSession()
			_, err := s.BeginGeocode(tt.query)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("BeginGeocode(%q) error = %v, want %v", tt.query, err, tt.wantErr)
			}
			if s.Geocoding != (tt.wantErr == nil) {
				t.Errorf("Geocoding = %v", s.Geocoding)
			}
		})
	}
}

func TestDaysAndBest(t *testing.T) {
	s := newSession()
	if got := s.Days(); len(got) != 0 {
		t.Errorf("Days() without forecast = %v, want empty", got)
	}
	if _, ok := s.Best(); ok {
		t.Error("Best() without forecast should report false")
	}

	s.SelectLocation(barcelona)
	seq, _, _ := s.BeginScore()
	resp := response(50, 80, 80)
	resp.Windows = append([]models.WindowScore{{Time: "2024-06-01T03:00", Score: 95}}, resp.Windows...)
	s.ApplyScore(seq, resp, nil)

	days := s.Days()
	if len(days) != 1 || len(days[0].Windows) != 3 {
		t.Fatalf("Days() = %+v, want one day with three daylight windows", days)
	}

	// Without a server pick the best window comes from the full forecast.
	best, _ := s.Best()
	if best.Time != "2024-06-01T03:00" {
		t.Errorf("Best() = %s, want the 03:00 window", best.Time)
	}

	resp.BestWindow = &resp.Windows[2]
	best, _ = s.Best()
	if best.Time != resp.Windows[2].Time {
		t.Errorf("Best() = %s, want server pick %s", best.Time, resp.Windows[2].Time)
	}

	s.ToggleNight()
	if got := len(s.VisibleWindows()); got != 4 {
		t.Errorf("VisibleWindows() with night = %d, want 4", got)
	}
}

func TestDetail(t *testing.T) {
	s := newSession()
	if _, ok := s.Detail(); ok {
		t.Error("Detail() without selection should report false")
	}

	s.SelectWindow(models.WindowScore{Time: "2024-06-01T12:00", Score: 45, Raw: models.RawMetrics{WindKn: 20}})
	d, ok := s.Detail()
	if !ok {
		t.Fatal("Detail() ok = false")
	}
	if d.Metrics[0].Value != "20.0 kn" {
		t.Errorf("wind = %s, want 20.0 kn", d.Metrics[0].Value)
	}

	s.ToggleUnits()
	d, _ = s.Detail()
	if d.Metrics[0].Value != "10.3 m/s" {
		t.Errorf("wind = %s, want 10.3 m/s", d.Metrics[0].Value)
	}

	s.ClearSelection()
	if s.Selected != nil {
		t.Error("ClearSelection() left a selection")
	}
}

func TestCycleSettings(t *testing.T) {
	s := newSession()
	s.CycleSkill()
	if s.Skill != models.SkillAdvanced {
		t.Errorf("Skill = %v, want avanzado", s.Skill)
	}
	if s.Limits().MaxWindKn != 32 {
		t.Errorf("Limits() = %+v, want advanced limits", s.Limits())
	}
	s.CycleBoatType()
	if s.BoatType != models.BoatCatamaran {
		t.Errorf("BoatType = %v, want catamaran", s.BoatType)
	}
}
