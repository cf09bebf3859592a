package regression

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/pvfit/dataset"
)

const (
	// R2PowerThreshold is the power (kW) a sample must exceed to count towards R² and
	// adjusted R². Readings at or below it sit near the inverter cut-in point and are
	// dominated by measurement noise.
	R2PowerThreshold = 40.0
	// CurvePoints is the number of evenly spaced points of the sampled curve.
	CurvePoints = 101
)

// Evaluate fits modelType to ds on the given axis and scores the fit.
//
// The model is fitted on, and predicts, every sample. RMSE uses every sample.
// R² and adjusted R² only use samples whose power exceeds R2PowerThreshold; when no
// sample qualifies both are 0.
//
// Parameters:
//   - ds: The samples to fit
//   - axis: The (x, y) quantity pair
//   - modelType: The functional family to fit
//
// Returns:
//   - *FitResult: Model, fit quality, sampled curve and scatter points
//   - error: Any error returned by Fit, or an error for an undefined axis
func Evaluate(ds dataset.Dataset, axis dataset.Axis, modelType ModelType) (*FitResult, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("invalid axis: %d", axis)
	}

	x, y := ds.XY(axis)
	model, err := Fit(modelType, x, y)
	if err != nil {
		return nil, err
	}

	predicted := make([]float64, len(x))
	for i, xi := range x {
		predicted[i] = model.Predict(xi)
	}

	var yR2, pR2 []float64
	for i, s := range ds {
		if s.Power > R2PowerThreshold {
			yR2 = append(yR2, y[i])
			pR2 = append(pR2, predicted[i])
		}
	}
	r2 := RSquared(yR2, pR2)

	return &FitResult{
		Model:            model,
		RSquared:         r2,
		AdjustedRSquared: AdjustedRSquared(r2, len(yR2), model.ParamCount),
		RMSE:             RMSE(y, predicted),
		SampleCount:      len(x),
		R2SampleCount:    len(yR2),
		Curve:            sampleCurve(model, x),
		Scatter:          scatter(ds, axis),
		XLabel:           axis.XLabel(),
		YLabel:           axis.YLabel(),
	}, nil
}

// Predictions returns the model prediction for every sample of ds on the axis,
// alongside the observed values.
func Predictions(model *Model, ds dataset.Dataset, axis dataset.Axis) (observed, predicted []float64) {
	x, y := ds.XY(axis)
	predicted = make([]float64, len(x))
	for i, xi := range x {
		predicted[i] = model.Predict(xi)
	}

	return y, predicted
}

// sampleCurve evaluates the model at CurvePoints x values spanning [min x, max x].
func sampleCurve(model *Model, x []float64) []Point {
	xs := floats.Span(make([]float64, CurvePoints), floats.Min(x), floats.Max(x))
	curve := make([]Point, CurvePoints)
	for i, xi := range xs {
		curve[i] = Point{X: xi, Y: model.Predict(xi)}
	}

	return curve
}

func scatter(ds dataset.Dataset, axis dataset.Axis) []ScatterPoint {
	points := make([]ScatterPoint, len(ds))
	for i, s := range ds {
		points[i] = ScatterPoint{X: axis.X(s), Y: axis.Y(s), SkyState: s.SkyState}
	}

	return points
}
