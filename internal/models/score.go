package models

// RawMetrics holds the physical measurements for one forecast window.
// Speeds are always knots. Wave fields are nil for inland points.
type RawMetrics struct {
	WindKn     float64  `json:"wind_kn" validate:"gte=0"`
	GustKn     float64  `json:"gust_kn" validate:"gte=0"`
	WaveHsM    *float64 `json:"wave_hs_m,omitempty" validate:"omitempty,gte=0"` // significant wave height, meters
	WaveTpS    *float64 `json:"wave_tp_s,omitempty" validate:"omitempty,gte=0"` // peak period, seconds
	WaveDirDeg *float64 `json:"wave_dir_deg,omitempty"`                         // degrees, coming from
	WindDirDeg *float64 `json:"wind_dir_deg,omitempty"`                         // degrees, coming from
	PrecipMmH  float64  `json:"precip_mm_h" validate:"gte=0"`
	TempC      float64  `json:"temp_c"`
}

// WaveHeight returns the significant wave height, or 0 when absent.
func (r RawMetrics) WaveHeight() float64 {
	if r.WaveHsM == nil {
		return 0
	}
	return *r.WaveHsM
}

// WindowScore is one scored forecast window as returned by the scoring service.
type WindowScore struct {
	Time    string     `json:"time" validate:"required"` // ISO-8601, naive local time or with offset
	Score   int        `json:"score" validate:"gte=0,lte=100"`
	Label   string     `json:"label"`
	Reasons []string   `json:"reasons"`
	Flags   []string   `json:"flags"`
	Raw     RawMetrics `json:"raw"`
}

// Location is the point a score response was computed for.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Safety summarises absolute no-go conditions across the whole forecast.
type Safety struct {
	NoGo bool     `json:"no_go"`
	Why  []string `json:"why"`
}

// ScoreResponse is the full forecast for one location and start date.
type ScoreResponse struct {
	Location   Location      `json:"location"`
	Windows    []WindowScore `json:"windows" validate:"dive"`
	BestWindow *WindowScore  `json:"best_window,omitempty" validate:"omitempty"`
	Safety     Safety        `json:"safety"`
}

// ScoreRequest is built from the current selections when the user asks for a score.
type ScoreRequest struct {
	Lat      float64    `json:"lat" validate:"gte=-90,lte=90"`
	Lon      float64    `json:"lon" validate:"gte=-180,lte=180"`
	BoatType BoatType   `json:"boat_type" validate:"known"`
	Skill    SkillLevel `json:"skill" validate:"known"`
	Date     string     `json:"date" validate:"required,datetime=2006-01-02"`
	Timezone string     `json:"timezone" validate:"required"`
}

// DayGroup is the windows of one calendar day in chronological order.
// It is derived on the client and never transmitted.
type DayGroup struct {
	Date    string // YYYY-MM-DD, as written in the window timestamps
	Windows []WindowScore
}
