package insights

import "math"

// Estimate1RM estimates the one-rep max using the Epley formula.
// A single rep (or less) is already a max, so the weight is returned as is.
// Otherwise: weight * (1 + reps/30), rounded to one decimal.
func Estimate1RM(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return round(weight*(1+float64(reps)/30), 1)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
