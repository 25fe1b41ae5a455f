package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/ngmaloney/sailing-score/internal/api"
	"github.com/ngmaloney/sailing-score/internal/models"
)

// geocodeMsg is sent when geocoding request seq completes
type geocodeMsg struct {
	seq     uint64
	results []models.GeocodeResult
	err     error
}

// scoreMsg is sent when score request seq completes
type scoreMsg struct {
	seq  uint64
	resp *models.ScoreResponse
	err  error
}

// geocodeLocation resolves query in the background
func geocodeLocation(geocoder api.Geocoder, seq uint64, query string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log.Debug("geocoding", "seq", seq, "query", query)
		results, err := geocoder.Geocode(ctx, query)
		return geocodeMsg{seq: seq, results: results, err: err}
	}
}

// fetchScore requests the scored forecast in the background
func fetchScore(scorer api.Scorer, seq uint64, req models.ScoreRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log.Debug("scoring", "seq", seq, "lat", req.Lat, "lon", req.Lon, "date", req.Date)
		resp, err := scorer.Score(ctx, req)
		return scoreMsg{seq: seq, resp: resp, err: err}
	}
}
