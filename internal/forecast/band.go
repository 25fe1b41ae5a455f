package forecast

// Band is the ordinal condition category of a score. Higher is better.
type Band int

const (
	BandPoor Band = iota
	BandMarginal
	BandGood
	BandExcellent
)

// Classify maps a 0-100 score onto its band. Every view goes through here so
// a score never renders with two different colours.
func Classify(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandMarginal
	default:
		return BandPoor
	}
}

func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "Excellent"
	case BandGood:
		return "Good"
	case BandMarginal:
		return "Marginal"
	default:
		return "Poor"
	}
}

// Color returns the hex colour used for the band in every view.
func (b Band) Color() string {
	switch b {
	case BandExcellent:
		return "#6BCF7F" // green
	case BandGood:
		return "#4A90E2" // blue
	case BandMarginal:
		return "#FFD93D" // yellow
	default:
		return "#FF6B6B" // red
	}
}
