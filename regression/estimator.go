package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the functional family fitted to the data.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: y = a*x + b
	ModelTypeLinear ModelType = iota
	// ModelTypeExponential represents the exponential model: y = a * e^(b * x)
	ModelTypeExponential
	// ModelTypePower represents the power model: y = a * x^b
	ModelTypePower
	// ModelTypePolynomial represents the quadratic model: y = c0 + c1*x + c2*x²
	ModelTypePolynomial
)

// modelTypeNames maps ModelType to the discriminators used by the dashboard.
var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "lineal",
	ModelTypeExponential: "exponencial",
	ModelTypePower:       "potencial",
	ModelTypePolynomial:  "polinomico",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ParamCount returns the number of fitted parameters of the model type.
//
// Returns 0 for unknown model types.
func (mt ModelType) ParamCount() int {
	switch mt {
	case ModelTypeLinear, ModelTypeExponential, ModelTypePower:
		return 2
	case ModelTypePolynomial:
		return 3
	default:
		return 0
	}
}

// Valid reports whether mt is one of the defined model types.
func (mt ModelType) Valid() bool {
	return mt.ParamCount() > 0
}

// ModelTypes returns every model type in the fixed comparison order:
// lineal, exponencial, potencial, polinomico.
func ModelTypes() []ModelType {
	return []ModelType{ModelTypeLinear, ModelTypeExponential, ModelTypePower, ModelTypePolynomial}
}

// modelTypeFromString maps accepted names (dashboard and English) to ModelType.
var modelTypeFromString = map[string]ModelType{
	"lineal":      ModelTypeLinear,
	"linear":      ModelTypeLinear,
	"exponencial": ModelTypeExponential,
	"exponential": ModelTypeExponential,
	"potencial":   ModelTypePower,
	"power":       ModelTypePower,
	"polinomico":  ModelTypePolynomial,
	"polinómico":  ModelTypePolynomial,
	"polynomial":  ModelTypePolynomial,
}

// ModelTypeFromString returns the ModelType for a given name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return modelType
	}

	return ModelType(-1)
}

// Estimator defines the interface of a fitted curve.
type Estimator interface {
	// Estimate returns the predicted y for the given x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients of the model.
	// The number of coefficients must match ModelType.ParamCount.
	SetCoefficients(coeffs []float64) error
}

// newEmptyEstimator creates a zero-valued estimator for the given ModelType.
func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	case ModelTypeExponential:
		return NewExponentialEstimator(0, 0)
	case ModelTypePower:
		return NewPowerEstimator(0, 0)
	case ModelTypePolynomial:
		return NewPolynomialEstimator(0, 0, 0)
	default:
		return nil
	}
}

// LinearEstimator implements the linear model: y = a*x + b
type LinearEstimator struct {
	a, b float64
}

// NewLinearEstimator creates a linear estimator with slope a and intercept b.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{a: a, b: b}
}

// Estimate calculates y = a*x + b.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.a*x + l.b
}

// Type returns the model type.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns [a, b].
func (l *LinearEstimator) Coefficients() []float64 {
	return []float64{l.a, l.b}
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// ExponentialEstimator implements the exponential model: y = a * e^(b * x)
type ExponentialEstimator struct {
	a, b float64
}

// NewExponentialEstimator creates an exponential estimator with the given coefficients.
func NewExponentialEstimator(a, b float64) *ExponentialEstimator {
	return &ExponentialEstimator{a: a, b: b}
}

// Estimate calculates y = a * e^(b * x).
func (e *ExponentialEstimator) Estimate(x float64) float64 {
	return e.a * math.Exp(e.b*x)
}

// Type returns the model type.
func (e *ExponentialEstimator) Type() ModelType {
	return ModelTypeExponential
}

// Coefficients returns [a, b].
func (e *ExponentialEstimator) Coefficients() []float64 {
	return []float64{e.a, e.b}
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (e *ExponentialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("exponential model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	e.a = coeffs[0]
	e.b = coeffs[1]

	return nil
}

// PowerEstimator implements the power model: y = a * x^b
type PowerEstimator struct {
	a, b float64
}

// NewPowerEstimator creates a power estimator with the given coefficients.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{a: a, b: b}
}

// Estimate calculates y = a * x^b.
//
// x is used as given; the 0.001 clamp applies only while fitting.
func (p *PowerEstimator) Estimate(x float64) float64 {
	return p.a * math.Pow(x, p.b)
}

// Type returns the model type.
func (p *PowerEstimator) Type() ModelType {
	return ModelTypePower
}

// Coefficients returns [a, b].
func (p *PowerEstimator) Coefficients() []float64 {
	return []float64{p.a, p.b}
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (p *PowerEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("power model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	p.a = coeffs[0]
	p.b = coeffs[1]

	return nil
}

// PolynomialEstimator implements the quadratic model: y = c0 + c1*x + c2*x²
type PolynomialEstimator struct {
	c0, c1, c2 float64
}

// NewPolynomialEstimator creates a quadratic estimator with the given coefficients.
func NewPolynomialEstimator(c0, c1, c2 float64) *PolynomialEstimator {
	return &PolynomialEstimator{c0: c0, c1: c1, c2: c2}
}

// Estimate calculates y = c0 + c1*x + c2*x².
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	return p.c0 + p.c1*x + p.c2*x*x
}

// Type returns the model type.
func (p *PolynomialEstimator) Type() ModelType {
	return ModelTypePolynomial
}

// Coefficients returns [c0, c1, c2].
func (p *PolynomialEstimator) Coefficients() []float64 {
	return []float64{p.c0, p.c1, p.c2}
}

// SetCoefficients expects exactly 3 coefficients: [c0, c1, c2].
func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("polynomial model expects exactly 3 coefficients, got %d", len(coeffs))
	}
	p.c0 = coeffs[0]
	p.c1 = coeffs[1]
	p.c2 = coeffs[2]

	return nil
}

// NewEstimator creates an estimator by model name and coefficients.
//
// Parameters:
//   - name: The model name (case-insensitive). Supported names:
//   - "lineal" / "linear": LinearEstimator (2 coefficients)
//   - "exponencial" / "exponential": ExponentialEstimator (2 coefficients)
//   - "potencial" / "power": PowerEstimator (2 coefficients)
//   - "polinomico" / "polynomial": PolynomialEstimator (3 coefficients)
//   - coeffs: The model coefficients
//
// Returns:
//   - Estimator: The created estimator instance
//   - error: Returns an error if the name is unknown or the coefficient count is wrong
//
// Example:
//
//	estimator, err := NewEstimator("lineal", []float64{0.061, -1.2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	kw := estimator.Estimate(850) // power at 850 W/m²
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		supportedTypes := make([]string, 0, len(modelTypeNames))
		for _, modelTypeName := range modelTypeNames {
			supportedTypes = append(supportedTypes, modelTypeName)
		}
		slices.Sort(supportedTypes)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supportedTypes, ", "))
	}

	return NewEstimatorOf(modelType, coeffs)
}

// NewEstimatorOf creates an estimator for a ModelType with the given coefficients.
func NewEstimatorOf(modelType ModelType, coeffs []float64) (Estimator, error) {
	estimator := newEmptyEstimator(modelType)
	if estimator == nil {
		return nil, fmt.Errorf("failed to create estimator for model type: %d", int(modelType))
	}

	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
