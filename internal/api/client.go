package api

import (
	"context"
	"errors"

	"github.com/ngmaloney/sailing-score/internal/models"
)

// ErrCollaborator wraps every failure of the geocoding or scoring service:
// transport errors, non-2xx statuses, undecodable or invalid bodies.
var ErrCollaborator = errors.New("collaborator request failed")

// ErrInvalidRequest is returned before any network call when a request does
// not pass validation.
var ErrInvalidRequest = errors.New("invalid request")

// Geocoder resolves free text into candidate locations
type Geocoder interface {
	// Geocode returns candidates for query. Queries shorter than two
	// characters return an empty result without a network call.
	Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error)
}

// Scorer fetches the scored forecast for a location
type Scorer interface {
	// Score requests the 5-day scored forecast described by req.
	Score(ctx context.Context, req models.ScoreRequest) (*models.ScoreResponse, error)
}
