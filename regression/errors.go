package regression

import (
	"errors"

	"github.com/arloliu/pvfit/internal/linalg"
)

var (
	// ErrInsufficientData is returned when a dataset has fewer samples than the
	// requested model has parameters, including the empty dataset.
	ErrInsufficientData = errors.New("regression: insufficient data")
	// ErrDegenerateFit is returned when a least-squares line cannot be fitted because
	// every x value is identical.
	ErrDegenerateFit = errors.New("regression: degenerate fit, x has zero variance")
	// ErrSingularMatrix is returned when the polynomial normal equations are singular.
	ErrSingularMatrix = linalg.ErrSingularMatrix
	// ErrUnknownModel is returned for a ModelType outside the defined set.
	ErrUnknownModel = errors.New("regression: unknown model type")
)
