package engine

import "math"

// RoundOdds rounds decimal odds to display-realistic precision: odds below
// 1.1 clamp to 1.1, short odds keep one decimal, mid-range odds keep two,
// long odds keep one.
func RoundOdds(odds float64) float64 {
	switch {
	case odds < 1.1:
		return 1.1
	case odds < 2.0:
		return roundTo(odds, 1)
	case odds < 10.0:
		return roundTo(odds, 2)
	default:
		return roundTo(odds, 1)
	}
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
