package stub

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ngmaloney/sailing-score/internal/models"
)

const (
	fixtureDays    = 5
	fixtureStepHrs = 3
)

// inland places have no marine data.
var inland = map[string]bool{
	"Lago de Sanabria": true,
}

// fixtureWindows produces five days of three-hourly windows starting at
// midnight of req.Date. The weather is a smooth deterministic pattern seeded
// by the coordinates; the numbers only need a plausible shape.
func fixtureWindows(req models.ScoreRequest) ([]models.WindowScore, error) {
	start, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", req.Date)
	}

	seed := req.Lat*1.7 + req.Lon*0.9
	marine := !inland[placeName(req.Lat, req.Lon)]

	n := fixtureDays * 24 / fixtureStepHrs
	windows := make([]models.WindowScore, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i*fixtureStepHrs) * time.Hour)
		phase := float64(i)*0.45 + seed

		wind := round1(4 + 12*(1+math.Sin(phase)))
		gust := round1(wind * (1.15 + 0.3*(1+math.Cos(phase*1.6))))
		raw := models.RawMetrics{
			WindKn:     wind,
			GustKn:     gust,
			WindDirDeg: float64Ptr(math.Mod(200+90*math.Sin(phase/3), 360)),
			PrecipMmH:  round1(math.Max(0, 3*math.Sin(phase*0.7+1))),
			TempC:      round1(18 + 6*math.Sin(float64(ts.Hour()-9)*math.Pi/12)),
		}
		if marine {
			raw.WaveHsM = float64Ptr(round1(0.3 + wind*0.07))
			raw.WaveTpS = float64Ptr(round1(4 + wind*0.2))
			raw.WaveDirDeg = float64Ptr(math.Mod(*raw.WindDirDeg+15, 360))
		}

		score := fixtureScore(raw)
		windows = append(windows, models.WindowScore{
			Time:    ts.Format("2006-01-02T15:04"),
			Score:   score,
			Label:   fixtureLabel(score),
			Reasons: fixtureReasons(raw),
			Flags:   fixtureFlags(raw),
			Raw:     raw,
		})
	}
	return windows, nil
}

func fixtureScore(raw models.RawMetrics) int {
	s := 100.0
	switch {
	case raw.WindKn < 10:
		s -= (10 - raw.WindKn) * 4
	case raw.WindKn > 20:
		s -= (raw.WindKn - 20) * 5
	}
	if raw.WindKn > 0 && raw.GustKn/raw.WindKn > 1.5 {
		s -= 15
	}
	if h := raw.WaveHeight(); h > 1.5 {
		s -= (h - 1.5) * 20
	}
	if raw.PrecipMmH > 2 {
		s -= 10
	}
	return int(math.Max(0, math.Min(100, math.Round(s))))
}

func fixtureLabel(score int) string {
	switch {
	case score >= 80:
		return "Muy bueno"
	case score >= 60:
		return "Bueno"
	case score >= 45:
		return "Aceptable / depende de experiencia"
	case score >= 30:
		return "A valorar con mucha cautela"
	default:
		return "No recomendable"
	}
}

func fixtureReasons(raw models.RawMetrics) []string {
	var reasons []string
	switch {
	case raw.WindKn < 10:
		reasons = append(reasons, fmt.Sprintf("Viento flojo (%.1f kn)", raw.WindKn))
	case raw.WindKn > 20:
		reasons = append(reasons, fmt.Sprintf("Viento fuerte (%.1f kn)", raw.WindKn))
	default:
		reasons = append(reasons, fmt.Sprintf("Viento en rango óptimo (%.1f kn)", raw.WindKn))
	}
	if raw.WaveHsM != nil {
		reasons = append(reasons, fmt.Sprintf("Ola de %.1f m", *raw.WaveHsM))
	}
	return reasons
}

func fixtureFlags(raw models.RawMetrics) []string {
	flags := []string{}
	if raw.WindKn > 0 && raw.GustKn/raw.WindKn > 1.5 {
		flags = append(flags, "Rachas elevadas")
	}
	if raw.PrecipMmH > 2 {
		flags = append(flags, "Posible visibilidad reducida")
	}
	if raw.WaveHsM == nil {
		flags = append(flags, "Sin datos de mar (estimación conservadora)")
	}
	return flags
}

// safetyFor checks every window against the skill's limits and lists each
// distinct breach once, in first-seen order.
func safetyFor(windows []models.WindowScore, skill models.SkillLevel) models.Safety {
	limits := models.SafetyLimitsFor(skill)
	seen := map[string]bool{}
	why := []string{}
	add := func(reason string) {
		if !seen[reason] {
			seen[reason] = true
			why = append(why, reason)
		}
	}

	for _, w := range windows {
		if w.Raw.WindKn > limits.MaxWindKn {
			add(fmt.Sprintf("Viento supera límite (%.0f kn)", limits.MaxWindKn))
		}
		if w.Raw.GustKn > limits.MaxGustKn {
			add(fmt.Sprintf("Rachas superan límite (%.0f kn)", limits.MaxGustKn))
		}
		if w.Raw.WaveHeight() > limits.MaxWaveM {
			add(fmt.Sprintf("Ola supera límite (%.1f m)", limits.MaxWaveM))
		}
	}
	return models.Safety{NoGo: len(why) > 0, Why: why}
}

// placeName names the gazetteer entry within half a degree of the point,
// falling back to the coordinates.
func placeName(lat, lon float64) string {
	best := ""
	bestDist := math.MaxFloat64
	for _, p := range gazetteer {
		d := math.Hypot(p.Lat-lat, p.Lon-lon)
		if d < bestDist {
			best, bestDist = p.Name, d
		}
	}
	if bestDist > 0.5 || strings.TrimSpace(best) == "" {
		return fmt.Sprintf("Lat %.2f, Lon %.2f", lat, lon)
	}
	return best
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func float64Ptr(f float64) *float64 {
	return &f
}
