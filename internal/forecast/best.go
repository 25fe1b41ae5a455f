package forecast

import "github.com/ngmaloney/sailing-score/internal/models"

// SelectBest returns the highest scoring window. On ties the earliest one
// wins. ok is false for an empty slice.
func SelectBest(windows []models.WindowScore) (best models.WindowScore, ok bool) {
	if len(windows) == 0 {
		return models.WindowScore{}, false
	}
	best = windows[0]
	for _, w := range windows[1:] {
		if w.Score > best.Score {
			best = w
		}
	}
	return best, true
}

// DayBest is the best window of a day group. Groups built by GroupByDay are
// never empty.
func DayBest(g models.DayGroup) models.WindowScore {
	best, _ := SelectBest(g.Windows)
	return best
}
