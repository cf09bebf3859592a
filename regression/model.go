package regression

import "fmt"

// Model represents a fitted curve with its metadata and the concrete estimator.
//
// Fields:
//   - Type: The functional family (lineal, exponencial, potencial, polinomico)
//   - Coefficients: The fitted parameters, in the order documented on each Estimator
//   - ParamCount: Number of fitted parameters (2, or 3 for the polynomial)
//   - Formula: Human-readable formula
//   - Estimator: Concrete implementation for making predictions
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// ParamCount is the number of fitted parameters used by adjusted R².
	ParamCount int
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, Params: %d, Formula: %s}", m.Type, m.ParamCount, m.Formula)
}

// Predict evaluates the model at x.
func (m *Model) Predict(x float64) float64 {
	return m.Estimator.Estimate(x)
}

// newModel wraps an estimator into a Model with a formatted formula.
func newModel(est Estimator) *Model {
	return &Model{
		Type:         est.Type(),
		Coefficients: est.Coefficients(),
		ParamCount:   est.Type().ParamCount(),
		Formula:      formatFormula(est.Type(), est.Coefficients()),
		Estimator:    est,
	}
}

// ModelFromCoefficients rebuilds a Model from a type and stored coefficients.
func ModelFromCoefficients(modelType ModelType, coeffs []float64) (*Model, error) {
	est, err := NewEstimatorOf(modelType, coeffs)
	if err != nil {
		return nil, err
	}

	return newModel(est), nil
}

func formatFormula(mt ModelType, c []float64) string {
	switch mt {
	case ModelTypeLinear:
		return fmt.Sprintf("y = %.4f*x + %.4f", c[0], c[1])
	case ModelTypeExponential:
		return fmt.Sprintf("y = %.4f * e^(%.6f * x)", c[0], c[1])
	case ModelTypePower:
		return fmt.Sprintf("y = %.4f * x^%.4f", c[0], c[1])
	case ModelTypePolynomial:
		return fmt.Sprintf("y = %.4f + %.6f*x + %.8f*x²", c[0], c[1], c[2])
	default:
		return ""
	}
}

// Point is a single (x, y) pair of the sampled curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterPoint is an observed sample projected on the selected axis.
type ScatterPoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	SkyState string  `json:"sky_state"`
}

// FitResult is the evaluation of one model type over one dataset.
type FitResult struct {
	// Model is the fitted curve.
	Model *Model
	// RSquared is the coefficient of determination over samples with power above
	// R2PowerThreshold. It may be negative for poor fits.
	RSquared float64
	// AdjustedRSquared penalises RSquared by the parameter count.
	AdjustedRSquared float64
	// RMSE is the root mean square error over every sample.
	RMSE float64
	// SampleCount is the number of samples the model was fitted on.
	SampleCount int
	// R2SampleCount is the number of samples that passed the R² power filter.
	R2SampleCount int
	// Curve holds CurvePoints evenly spaced points across the observed x range.
	Curve []Point
	// Scatter holds every sample projected on the axis, in input order.
	Scatter []ScatterPoint
	// XLabel is the display label of the x quantity.
	XLabel string
	// YLabel is the display label of the y quantity.
	YLabel string
}

// String returns a string representation of the result.
func (r *FitResult) String() string {
	if r.Model == nil {
		return "FitResult{Model: nil}"
	}

	return fmt.Sprintf("FitResult{Type: %s, R²: %.4f, AdjR²: %.4f, RMSE: %.4f, Formula: %s}",
		r.Model.Type, r.RSquared, r.AdjustedRSquared, r.RMSE, r.Model.Formula)
}
