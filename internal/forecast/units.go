package forecast

import "fmt"

// KnotsToMS is the exact knots to meters-per-second factor.
const KnotsToMS = 0.514444

// DisplaySpeed formats a speed given in knots, converting to m/s when
// useKnots is false.
func DisplaySpeed(kn float64, useKnots bool) string {
	if useKnots {
		return fmt.Sprintf("%.1f kn", kn)
	}
	return fmt.Sprintf("%.1f m/s", kn*KnotsToMS)
}
