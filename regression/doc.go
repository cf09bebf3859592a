// Package regression fits predictive curves to photovoltaic measurement samples.
//
// The package implements four least-squares curve fitters, the goodness-of-fit
// metrics used to compare them, and the evaluator that turns a dataset into a
// FitResult ready for rendering.
//
// # Model Types
//
//   - **Linear** (lineal): y = a*x + b
//   - **Exponential** (exponencial): y = a * e^(b*x), fitted on ln(y)
//   - **Power** (potencial): y = a * x^b, fitted on ln(x), ln(y)
//   - **Polynomial** (polinomico): y = c0 + c1*x + c2*x², fitted through the normal equations
//
// Every fitter reduces to a closed-form linear regression or a 3×3 linear solve, so a
// fit is O(n) and fully deterministic: the same input always produces bit-identical
// coefficients.
//
// # Basic Usage
//
//	result, err := regression.Evaluate(ds, dataset.AxisIrradiancePower, regression.ModelTypeLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Model.Formula, result.AdjustedRSquared, result.RMSE)
//
//	// Predict power at 850 W/m²
//	kw := result.Model.Predict(850)
//
// # Fit Quality
//
//   - RMSE is computed over every sample.
//   - R² and adjusted R² only use samples whose power exceeds R2PowerThreshold (40 kW).
//   - Adjusted R² is 0 when the filtered sample count m satisfies m <= p+1, where p is
//     the parameter count (2, or 3 for the polynomial).
//
// # Errors
//
// Pathological input fails explicitly instead of producing NaN coefficients:
//
//   - ErrInsufficientData: fewer samples than model parameters
//   - ErrDegenerateFit: a line through identical x values
//   - ErrSingularMatrix: singular polynomial normal equations
//
// Two cases are recoverable and are not errors: an exponential fit with fewer than
// three positive y values returns y = 1 * e^(0*x), and the power fit clamps x and y
// to PowerClampFloor before taking logarithms.
package regression
