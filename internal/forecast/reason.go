package forecast

import "github.com/ngmaloney/sailing-score/internal/models"

// Brief reasons, one per rule of BriefReason.
const (
	ReasonRoughSeas  = "Mar agitado"
	ReasonGusty      = "Rachas fuertes"
	ReasonLightWind  = "Viento flojo"
	ReasonIdeal      = "Condiciones ideales"
	ReasonStrongWind = "Viento fuerte"
	ReasonModerate   = "Condiciones moderadas"
)

// BriefReason derives a one-line summary from the raw metrics alone. It does
// not look at the server supplied reasons or flags. Rules are checked in
// order and the first match wins.
func BriefReason(raw models.RawMetrics) string {
	wind := raw.WindKn
	wave := raw.WaveHeight()

	gustFactor := 1.0
	if wind > 0 {
		gustFactor = raw.GustKn / wind
	}

	switch {
	case wave > 2.0:
		return ReasonRoughSeas
	case gustFactor > 2.0:
		return ReasonGusty
	case wind < 5:
		return ReasonLightWind
	case wind >= 10 && wind <= 20 && wave <= 1.5:
		return ReasonIdeal
	case wind > 25:
		return ReasonStrongWind
	default:
		return ReasonModerate
	}
}
