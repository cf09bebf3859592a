// Package linalg provides the dense linear-system kernel used by the polynomial fitter.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

// SingularTolerance is the relative pivot magnitude below which a matrix is treated as singular.
//
// A pivot p is rejected when |p| <= SingularTolerance * max|A_ij| of the input matrix.
const SingularTolerance = 1e-12

var (
	// ErrSingularMatrix is returned when elimination meets an effectively-zero pivot.
	ErrSingularMatrix = errors.New("linalg: matrix is singular")
	// ErrDimensionMismatch is returned when A is not square or b does not match A.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
)

// Solve solves A·x = b using Gaussian elimination with partial pivoting.
//
// The inputs are copied into an augmented matrix [A|b] and never modified. For each
// pivot column the row with the largest absolute value among the remaining rows is
// swapped in, the entries below the pivot are eliminated, and the solution is recovered
// by back substitution from the last row upward.
//
// Parameters:
//   - a: Square n×n coefficient matrix (row-major)
//   - b: Right-hand side vector of length n
//
// Returns:
//   - []float64: Solution vector x of length n
//   - error: ErrDimensionMismatch for malformed input, ErrSingularMatrix when a pivot is
//     effectively zero after pivoting
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if n == 0 || len(a) != n {
		return nil, fmt.Errorf("%w: %d rows, %d rhs entries", ErrDimensionMismatch, len(a), n)
	}

	scale := 0.0
	aug := make([][]float64, n)
	for i := range n {
		if len(a[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(a[i]), n)
		}
		aug[i] = make([]float64, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]

		for _, v := range a[i] {
			if abs := math.Abs(v); abs > scale {
				scale = abs
			}
		}
	}

	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrSingularMatrix
	}
	tol := SingularTolerance * scale

	// Forward elimination
	for col := range n {
		pivot := col
		maxAbs := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > maxAbs {
				maxAbs = v
				pivot = r
			}
		}
		if maxAbs <= tol {
			return nil, fmt.Errorf("%w: pivot %d is %g", ErrSingularMatrix, col, maxAbs)
		}
		if pivot != col {
			aug[col], aug[pivot] = aug[pivot], aug[col]
		}

		for r := col + 1; r < n; r++ {
			factor := aug[r][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	// Back substitution
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}
