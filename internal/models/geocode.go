package models

import "strings"

// GeocodeResult is a candidate location returned by the geocoding service.
type GeocodeResult struct {
	Name    string  `json:"name" validate:"required"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" validate:"gte=-180,lte=180"`
	Country string  `json:"country,omitempty"`
	Admin1  string  `json:"admin1,omitempty"` // first-level region, e.g. "Catalunya"
}

// Region returns "admin1, country" with empty parts left out.
func (g GeocodeResult) Region() string {
	var parts []string
	if g.Admin1 != "" {
		parts = append(parts, g.Admin1)
	}
	if g.Country != "" {
		parts = append(parts, g.Country)
	}
	return strings.Join(parts, ", ")
}

// GeocodeResponse is the envelope of the geocoding endpoint.
type GeocodeResponse struct {
	Results []GeocodeResult `json:"results" validate:"dive"`
}
