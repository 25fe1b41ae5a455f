package forecast

import (
	"fmt"
	"time"

	"github.com/ngmaloney/sailing-score/internal/models"
)

// Metric is one labelled value in the detail view.
type Metric struct {
	Label string
	Value string
}

// Detail is everything the detail view shows for one selected window.
type Detail struct {
	Heading     string
	Band        Band
	Score       int
	Label       string
	Narrative   string
	BriefReason string
	Reasons     []string
	Flags       []string
	Metrics     []Metric
}

// BuildDetail assembles the detail view for w.
func BuildDetail(w models.WindowScore, skill models.SkillLevel, boat models.BoatType, useKnots bool, loc *time.Location) Detail {
	band := Classify(w.Score)
	return Detail{
		Heading:     FormatDateTime(w.Time, loc),
		Band:        band,
		Score:       w.Score,
		Label:       w.Label,
		Narrative:   Describe(band, skill, boat),
		BriefReason: BriefReason(w.Raw),
		Reasons:     w.Reasons,
		Flags:       w.Flags,
		Metrics:     Metrics(w.Raw, useKnots),
	}
}

// Metrics formats the raw measurements. Optional ones are left out when absent.
func Metrics(raw models.RawMetrics, useKnots bool) []Metric {
	metrics := []Metric{
		{Label: "Viento", Value: DisplaySpeed(raw.WindKn, useKnots)},
		{Label: "Rachas", Value: DisplaySpeed(raw.GustKn, useKnots)},
	}
	if raw.WaveHsM != nil {
		metrics = append(metrics, Metric{Label: "Altura de ola (Hs)", Value: fmt.Sprintf("%.1f m", *raw.WaveHsM)})
		if raw.WaveTpS != nil && *raw.WaveTpS > 0 {
			metrics = append(metrics, Metric{Label: "Periodo (Tp)", Value: fmt.Sprintf("%.1f s", *raw.WaveTpS)})
		}
	}
	metrics = append(metrics,
		Metric{Label: "Precipitación", Value: fmt.Sprintf("%.1f mm/h", raw.PrecipMmH)},
		Metric{Label: "Temperatura", Value: fmt.Sprintf("%.1f°C", raw.TempC)},
	)
	if raw.WindDirDeg != nil {
		metrics = append(metrics, Metric{Label: "Dirección viento", Value: fmt.Sprintf("%.0f°", *raw.WindDirDeg)})
	}
	if raw.WaveDirDeg != nil {
		metrics = append(metrics, Metric{Label: "Dirección ola", Value: fmt.Sprintf("%.0f°", *raw.WaveDirDeg)})
	}
	return metrics
}
