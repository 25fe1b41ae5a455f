package stub

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ngmaloney/sailing-score/internal/forecast"
	"github.com/ngmaloney/sailing-score/internal/models"
)

const scoreBody = `{"lat":41.3851,"lon":2.1734,"boat_type":"cruiser_35_45","skill":"intermedio","date":"2024-06-01","timezone":"Europe/Madrid"}`

func TestHealth(t *testing.T) {
	app := NewApp(io.Discard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestGeocode(t *testing.T) {
	app := NewApp(io.Discard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/geocode?q=pal", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body models.GeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(body.Results) != 1 || body.Results[0].Name != "Palma" {
		t.Errorf("results = %+v, want Palma", body.Results)
	}

	// Missing query is rejected.
	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/geocode", nil))
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, resp.StatusCode)
	}
}

func TestScore(t *testing.T) {
	app := NewApp(io.Discard)

	req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader(scoreBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body models.ScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if err := models.Validate(body); err != nil {
		t.Fatalf("response fails validation: %v", err)
	}

	if len(body.Windows) != 40 {
		t.Fatalf("got %d windows, want 40", len(body.Windows))
	}
	if body.Location.Name != "Barcelona" {
		t.Errorf("Location.Name = %s, want Barcelona", body.Location.Name)
	}
	if groups := forecast.GroupByDay(body.Windows); len(groups) != 5 {
		t.Errorf("windows span %d days, want 5", len(groups))
	}

	best, _ := forecast.SelectBest(body.Windows)
	if body.BestWindow == nil || body.BestWindow.Time != best.Time {
		t.Errorf("BestWindow = %+v, want first maximum %s", body.BestWindow, best.Time)
	}

	for i := 1; i < len(body.Windows); i++ {
		if body.Windows[i].Time <= body.Windows[i-1].Time {
			t.Fatalf("window %d time %s not after %s", i, body.Windows[i].Time, body.Windows[i-1].Time)
		}
	}
}

func TestScore_InlandHasNoWaves(t *testing.T) {
	app := NewApp(io.Discard)

	body := `{"lat":42.125,"lon":-6.7197,"boat_type":"vela_ligera","skill":"principiante","date":"2024-06-01","timezone":"Europe/Madrid"}`
	req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out models.ScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	for _, w := range out.Windows {
		if w.Raw.WaveHsM != nil {
			t.Fatalf("inland window %s has wave data", w.Time)
		}
	}
}

func TestScore_Validation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"lat":`, http.StatusBadRequest},
		{"unknown boat", strings.Replace(scoreBody, "cruiser_35_45", "submarine", 1), http.StatusUnprocessableEntity},
		{"bad date", strings.Replace(scoreBody, "2024-06-01", "junio", 1), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(io.Discard)
			req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestSafetyFor(t *testing.T) {
	windows := []models.WindowScore{
		{Raw: models.RawMetrics{WindKn: 22, GustKn: 30}},
		{Raw: models.RawMetrics{WindKn: 24, GustKn: 31}},
	}

	beginner := safetyFor(windows, models.SkillBeginner)
	if !beginner.NoGo || len(beginner.Why) != 2 {
		t.Errorf("beginner safety = %+v, want wind and gust breaches listed once", beginner)
	}

	advanced := safetyFor(windows, models.SkillAdvanced)
	if advanced.NoGo || len(advanced.Why) != 0 {
		t.Errorf("advanced safety = %+v, want no breaches", advanced)
	}
}
