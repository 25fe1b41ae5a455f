package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/sailing-score/internal/models"
)

// locationItem wraps a GeocodeResult for use in a list
type locationItem struct {
	location models.GeocodeResult
}

// FilterValue implements list.Item
func (l locationItem) FilterValue() string {
	return l.location.Name
}

// Title implements list.DefaultItem
func (l locationItem) Title() string {
	return l.location.Name
}

// Description implements list.DefaultItem
func (l locationItem) Description() string {
	if region := l.location.Region(); region != "" {
		return region
	}
	return fmt.Sprintf("%.4f, %.4f", l.location.Lat, l.location.Lon)
}

// createLocationList creates a list.Model from geocoding candidates
func createLocationList(results []models.GeocodeResult, width, height int) list.Model {
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = locationItem{location: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Selecciona una ubicación"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
