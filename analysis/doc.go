// Package analysis runs fits across clusters and selects the best model kind and
// clustering configuration for a dataset.
//
// EvaluateClustered fits one model kind per cluster of a partition and reports a pooled
// RMSE over the residuals of every cluster. SelectBestModel compares the four model kinds
// by adjusted R² on the unclustered dataset, then compares the winner's unclustered RMSE
// with the pooled RMSE of each clustering strategy.
//
// All operations are deterministic. WithParallel fans independent evaluations out over
// goroutines; results are identical to the sequential path.
package analysis
