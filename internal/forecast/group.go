package forecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/ngmaloney/sailing-score/internal/models"
)

// Daylight slots run from 08:00 to the 21:00 window inclusive.
const (
	DayStartHour = 8
	DayEndHour   = 21
)

var offsetLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseWindowTime parses a window timestamp into the display timezone.
// Timestamps carrying an offset are converted; naive ones are taken to be
// wall-clock time in loc already, which is what the scoring service sends
// back for the timezone it was asked for.
func ParseWindowTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised window time %q", s)
}

// IsDaylight reports whether the window's local hour is within the daylight range.
func IsDaylight(w models.WindowScore, loc *time.Location) bool {
	t, err := ParseWindowTime(w.Time, loc)
	if err != nil {
		return false
	}
	h := t.Hour()
	return h >= DayStartHour && h <= DayEndHour
}

// FilterByVisibility drops night windows unless showNight is set. The input
// order is kept and the input slice is never modified.
func FilterByVisibility(windows []models.WindowScore, showNight bool, loc *time.Location) []models.WindowScore {
	if showNight {
		return windows
	}
	out := make([]models.WindowScore, 0, len(windows))
	for _, w := range windows {
		if IsDaylight(w, loc) {
			out = append(out, w)
		}
	}
	return out
}

// GroupByDay partitions windows by the date written in their timestamp,
// keeping the first-seen order of dates and the order within each day.
func GroupByDay(windows []models.WindowScore) []models.DayGroup {
	groups := []models.DayGroup{}
	index := make(map[string]int)
	for _, w := range windows {
		date := dateOf(w.Time)
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, models.DayGroup{Date: date})
		}
		groups[i].Windows = append(groups[i].Windows, w)
	}
	return groups
}

// VisibleDays applies the visibility filter and groups what is left.
func VisibleDays(windows []models.WindowScore, showNight bool, loc *time.Location) []models.DayGroup {
	return GroupByDay(FilterByVisibility(windows, showNight, loc))
}

func dateOf(ts string) string {
	date, _, _ := strings.Cut(ts, "T")
	return date
}
