package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// Returns 0 for empty input or when SS_tot is zero. The value is at most 1 and can be
// negative when the model is worse than the mean.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := floats.Sum(observed) / float64(len(observed))
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		d := observed[i] - mean
		r := observed[i] - predicted[i]
		ssTot += d * d
		ssRes += r * r
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// AdjustedRSquared penalises r2 for the number of model parameters.
//
// Formula: 1 - (1 - R²)(m - 1) / (m - p - 1)
//
// Returns 0 when m <= p+1 (the formula is undefined there) or when r2 is NaN.
func AdjustedRSquared(r2 float64, m, p int) float64 {
	if math.IsNaN(r2) || m <= p+1 {
		return 0
	}

	return 1 - (1-r2)*float64(m-1)/float64(m-p-1)
}

// RMSE calculates the root mean square error: √(Σ(observed - predicted)² / n).
//
// Returns 0 for empty input.
func RMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
