package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/pvfit/internal/linalg"
)

const (
	// PowerClampFloor is the minimum x and y used before taking logarithms in the
	// power fit, so zero readings stay in the fit instead of producing -Inf.
	PowerClampFloor = 0.001
	// ExponentialMinPositive is the minimum number of samples with y > 0 needed for an
	// exponential fit. Below it the fit falls back to y = 1 * e^(0 * x).
	ExponentialMinPositive = 3
)

// Fit fits the given model type to the (x, y) series.
//
// Parameters:
//   - modelType: The functional family to fit
//   - x: Independent values
//   - y: Dependent values, same length as x
//
// Returns:
//   - *Model: The fitted model
//   - error: ErrInsufficientData when len(x) is below the parameter count,
//     ErrDegenerateFit when a line cannot be fitted through identical x values,
//     ErrSingularMatrix when the polynomial normal equations cannot be solved,
//     ErrUnknownModel for an undefined model type
//
// Non-positive y values in the exponential fit and non-positive x or y values in the
// power fit are not errors: they resolve to the documented fallbacks.
func Fit(modelType ModelType, x, y []float64) (*Model, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched data lengths: %d x vs %d y", len(x), len(y))
	}

	params := modelType.ParamCount()
	if params == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(modelType))
	}
	if len(x) < params {
		return nil, fmt.Errorf("%w: %s needs at least %d samples, got %d", ErrInsufficientData, modelType, params, len(x))
	}

	var (
		est Estimator
		err error
	)

	switch modelType {
	case ModelTypeLinear:
		est, err = fitLinear(x, y)
	case ModelTypeExponential:
		est, err = fitExponential(x, y)
	case ModelTypePower:
		est, err = fitPower(x, y)
	case ModelTypePolynomial:
		est, err = fitPolynomial(x, y)
	}
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", modelType, err)
	}

	return newModel(est), nil
}

// leastSquares fits y = slope*x + intercept with the closed-form OLS solution:
//
//	slope     = (NΣxy − ΣxΣy) / (NΣx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / N
func leastSquares(x, y []float64) (slope, intercept float64, err error) {
	n := float64(len(x))
	if len(x) == 0 {
		return 0, 0, ErrInsufficientData
	}
	if floats.Min(x) == floats.Max(x) {
		return 0, 0, ErrDegenerateFit
	}

	sumX := floats.Sum(x)
	sumY := floats.Sum(y)
	sumXY := floats.Dot(x, y)
	sumX2 := floats.Dot(x, x)

	denom := n*sumX2 - sumX*sumX
	if denom <= 0 || math.IsNaN(denom) {
		// x values differ only below float64 resolution of the sums
		return 0, 0, ErrDegenerateFit
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	return slope, intercept, nil
}

// fitLinear fits the linear model: y = a*x + b
func fitLinear(x, y []float64) (Estimator, error) {
	a, b, err := leastSquares(x, y)
	if err != nil {
		return nil, err
	}

	return NewLinearEstimator(a, b), nil
}

// fitExponential fits the exponential model: y = a * e^(b * x)
//
// Only samples with y > 0 take part. The model is linearised as
// ln(y) = ln(a) + b*x, fitted by least squares and transformed back.
// With fewer than ExponentialMinPositive usable samples the neutral curve
// a = 1, b = 0 is returned.
func fitExponential(x, y []float64) (Estimator, error) {
	xs := make([]float64, 0, len(x))
	lnY := make([]float64, 0, len(y))
	for i := range x {
		if y[i] > 0 {
			xs = append(xs, x[i])
			lnY = append(lnY, math.Log(y[i]))
		}
	}

	if len(xs) < ExponentialMinPositive {
		return NewExponentialEstimator(1, 0), nil
	}

	slope, intercept, err := leastSquares(xs, lnY)
	if err != nil {
		return nil, err
	}

	return NewExponentialEstimator(math.Exp(intercept), slope), nil
}

// fitPower fits the power model: y = a * x^b
//
// The model is linearised as ln(y) = ln(a) + b*ln(x). Both x and y are clamped to
// PowerClampFloor before taking logarithms.
func fitPower(x, y []float64) (Estimator, error) {
	lnX := make([]float64, len(x))
	lnY := make([]float64, len(y))
	for i := range x {
		lnX[i] = math.Log(math.Max(x[i], PowerClampFloor))
		lnY[i] = math.Log(math.Max(y[i], PowerClampFloor))
	}

	slope, intercept, err := leastSquares(lnX, lnY)
	if err != nil {
		return nil, err
	}

	return NewPowerEstimator(math.Exp(intercept), slope), nil
}

// fitPolynomial fits the quadratic model: y = c0 + c1*x + c2*x²
//
// x is mapped to u = (x - mean) / spread, where spread is the largest distance from the
// mean, so u lies in [-1, 1]. The normal equations in u are built from power sums and
// solved by Gaussian elimination with partial pivoting:
//
//	[n    Σu   Σu²] [d0]   [Σy  ]
//	[Σu   Σu²  Σu³] [d1] = [Σuy ]
//	[Σu²  Σu³  Σu⁴] [d2]   [Σu²y]
//
// and the coefficients are converted back to x.
func fitPolynomial(x, y []float64) (Estimator, error) {
	n := float64(len(x))
	mean := floats.Sum(x) / n
	spread := math.Max(floats.Max(x)-mean, mean-floats.Min(x))
	if spread == 0 || math.IsNaN(spread) || math.IsInf(spread, 0) {
		return nil, fmt.Errorf("normal equations: %w", ErrSingularMatrix)
	}

	var sumU, sumU2, sumU3, sumU4, sumY, sumUY, sumU2Y float64
	for i := range x {
		u := (x[i] - mean) / spread
		u2 := u * u
		yi := y[i]

		sumU += u
		sumU2 += u2
		sumU3 += u2 * u
		sumU4 += u2 * u2
		sumY += yi
		sumUY += u * yi
		sumU2Y += u2 * yi
	}

	a := [][]float64{
		{n, sumU, sumU2},
		{sumU, sumU2, sumU3},
		{sumU2, sumU3, sumU4},
	}
	b := []float64{sumY, sumUY, sumU2Y}

	d, err := linalg.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("normal equations: %w", err)
	}

	// y = d0 + d1*(x-m)/s + d2*((x-m)/s)²
	shift := mean / spread
	c2 := d[2] / (spread * spread)
	c1 := d[1]/spread - 2*mean*c2
	c0 := d[0] - d[1]*shift + d[2]*shift*shift

	return NewPolynomialEstimator(c0, c1, c2), nil
}
