// Package pvfit fits predictive curves to photovoltaic measurements and selects the
// best model kind and clustering configuration for a dataset.
//
// A dataset is a sequence of paired samples (irradiance, power, generation) with sky
// state, panel inclination and ambient temperature covariates. Four model kinds are
// available: linear, exponential, power law and degree-2 polynomial. Samples can be
// partitioned by sky state, temperature band or inclination band before fitting.
//
// # Core Features
//
//   - Closed-form least-squares fitters with explicit errors for degenerate input
//   - R² and adjusted R² over the samples above the inverter cut-in power, RMSE over all
//   - Per-cluster fits with a pooled RMSE over every cluster's residuals
//   - Deterministic model and clustering selection with a ±10% tolerance band
//   - Optional parallel evaluation with results identical to the sequential path
//
// # Basic Usage
//
// Fitting one model kind:
//
//	import "github.com/arloliu/pvfit"
//
//	ds := pvfit.Dataset{
//	    {Irradiance: 420, Power: 31.9, Generation: 30.8, SkyState: "clear", Temperature: 21, Inclination: 25},
//	    // ...
//	}
//	result, err := pvfit.Evaluate(ds, pvfit.AxisIrradiancePower, pvfit.ModelLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Model.Formula, result.AdjustedRSquared)
//
// Selecting the model kind and clustering configuration:
//
//	report, err := pvfit.SelectBestModel(ds, pvfit.AxisIrradiancePower)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.ChosenModel, report.ChosenConfiguration)
//
// # Package Structure
//
// This package re-exports the entry points and records of the dataset, regression,
// cluster and analysis packages. Use those packages directly for the lower-level
// fitters, metrics and partition functions. The report package encodes results into a
// compact, checksummed binary envelope.
package pvfit

import (
	"github.com/arloliu/pvfit/analysis"
	"github.com/arloliu/pvfit/cluster"
	"github.com/arloliu/pvfit/dataset"
	"github.com/arloliu/pvfit/regression"
)

type (
	// Sample is a single paired measurement.
	Sample = dataset.Sample
	// Dataset is an ordered sequence of samples.
	Dataset = dataset.Dataset
	// Axis selects the (x, y) quantity pair.
	Axis = dataset.Axis
	// ModelType is a fitted functional family.
	ModelType = regression.ModelType
	// Strategy is a clustering strategy.
	Strategy = cluster.Strategy
	// FitResult is the outcome of one fit.
	FitResult = regression.FitResult
	// ClusteredResult is the outcome of one fit per cluster.
	ClusteredResult = analysis.ClusteredResult
	// SelectionReport is the outcome of SelectBestModel.
	SelectionReport = analysis.SelectionReport
	// Option configures an analysis run.
	Option = analysis.Option
)

const (
	AxisIrradiancePower = dataset.AxisIrradiancePower
	AxisPowerGeneration = dataset.AxisPowerGeneration

	ModelLinear      = regression.ModelTypeLinear
	ModelExponential = regression.ModelTypeExponential
	ModelPower       = regression.ModelTypePower
	ModelPolynomial  = regression.ModelTypePolynomial

	ClusterBySkyState    = cluster.StrategySkyState
	ClusterByTemperature = cluster.StrategyTemperature
	ClusterByInclination = cluster.StrategyInclination
)

var (
	ErrInsufficientData = regression.ErrInsufficientData
	ErrDegenerateFit    = regression.ErrDegenerateFit
	ErrSingularMatrix   = regression.ErrSingularMatrix
	ErrUnknownModel     = regression.ErrUnknownModel
	ErrUnknownStrategy  = cluster.ErrUnknownStrategy
)

// Evaluate fits kind to the whole dataset and scores the fit.
//
// Returns ErrInsufficientData when ds has fewer samples than the model has parameters,
// ErrDegenerateFit when every x is identical for the linear, exponential and power
// kinds, and ErrSingularMatrix when the polynomial normal equations are singular.
func Evaluate(ds Dataset, axis Axis, kind ModelType) (*FitResult, error) {
	return regression.Evaluate(ds, axis, kind)
}

// EvaluateClustered partitions ds with strategy, fits kind to every cluster and pools
// the residuals of all clusters into one RMSE.
func EvaluateClustered(ds Dataset, axis Axis, kind ModelType, strategy Strategy, opts ...Option) (*ClusteredResult, error) {
	return analysis.EvaluateClustered(ds, axis, kind, strategy, opts...)
}

// SelectBestModel compares the four model kinds by adjusted R², then compares the
// winner's unclustered RMSE with each clustering strategy's pooled RMSE.
//
// Available options:
//   - WithLogger(*slog.Logger): debug trace of every comparison
//   - WithParallel(bool): evaluate independent fits concurrently
func SelectBestModel(ds Dataset, axis Axis, opts ...Option) (*SelectionReport, error) {
	return analysis.SelectBestModel(ds, axis, opts...)
}

// WithLogger is analysis.WithLogger.
var WithLogger = analysis.WithLogger

// WithParallel is analysis.WithParallel.
var WithParallel = analysis.WithParallel
