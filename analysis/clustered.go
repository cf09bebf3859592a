package analysis

import (
	"fmt"

	"github.com/arloliu/pvfit/cluster"
	"github.com/arloliu/pvfit/dataset"
	"github.com/arloliu/pvfit/regression"
)

// ClusterFit pairs a cluster with the fit of its members.
type ClusterFit struct {
	Cluster cluster.Cluster
	Result  *regression.FitResult
}

// ClusteredResult is the outcome of fitting one model kind per cluster.
type ClusteredResult struct {
	// Strategy is the clustering strategy that produced the clusters.
	Strategy cluster.Strategy
	// Clusters holds one fit per non-empty cluster in partition order.
	Clusters []ClusterFit
	// PooledRMSE is the RMSE over the residuals of every cluster taken together.
	PooledRMSE float64
}

// ByKey returns the fit of the cluster with the given key.
func (r *ClusteredResult) ByKey(key string) (*regression.FitResult, bool) {
	for _, cf := range r.Clusters {
		if cf.Cluster.Key == key {
			return cf.Result, true
		}
	}

	return nil, false
}

// Keys returns the cluster keys in partition order.
func (r *ClusteredResult) Keys() []string {
	keys := make([]string, len(r.Clusters))
	for i, cf := range r.Clusters {
		keys[i] = cf.Cluster.Key
	}

	return keys
}

// EvaluateClustered partitions ds with strategy and fits kind to every cluster.
//
// The pooled RMSE concatenates observed and predicted values in cluster-then-sample
// order and computes a single RMSE, so larger clusters weigh proportionally more. It is
// not the mean of the per-cluster RMSEs.
//
// Parameters:
//   - ds: The samples to partition and fit
//   - axis: The (x, y) quantity pair
//   - kind: The model kind fitted to every cluster
//   - strategy: The clustering strategy
//   - opts: Optional logger and parallel evaluation
//
// Returns:
//   - *ClusteredResult: Per-cluster fits and the pooled RMSE
//   - error: ErrUnknownStrategy, ErrInsufficientData for an empty dataset, or the first
//     per-cluster fit error wrapped with the cluster key
func EvaluateClustered(ds dataset.Dataset, axis dataset.Axis, kind regression.ModelType, strategy cluster.Strategy, opts ...Option) (*ClusteredResult, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return evaluateClustered(cfg, ds, axis, kind, strategy)
}

// PooledRMSE returns only the pooled RMSE of EvaluateClustered.
func PooledRMSE(ds dataset.Dataset, axis dataset.Axis, kind regression.ModelType, strategy cluster.Strategy, opts ...Option) (float64, error) {
	res, err := EvaluateClustered(ds, axis, kind, strategy, opts...)
	if err != nil {
		return 0, err
	}

	return res.PooledRMSE, nil
}

func evaluateClustered(cfg *Config, ds dataset.Dataset, axis dataset.Axis, kind regression.ModelType, strategy cluster.Strategy) (*ClusteredResult, error) {
	clusters, err := cluster.Partition(ds, strategy)
	if err != nil {
		return nil, err
	}
	if len(clusters) == 0 {
		return nil, fmt.Errorf("%s clustering: %w", strategy, regression.ErrInsufficientData)
	}

	fits, err := runIndexed(cfg.parallel, len(clusters), func(i int) (ClusterFit, error) {
		c := clusters[i]
		res, err := regression.Evaluate(c.Members, axis, kind)
		if err != nil {
			return ClusterFit{}, fmt.Errorf("%s cluster %q: %w", strategy, c.Key, err)
		}

		return ClusterFit{Cluster: c, Result: res}, nil
	})
	if err != nil {
		return nil, err
	}

	observed := make([]float64, 0, len(ds))
	predicted := make([]float64, 0, len(ds))
	for _, cf := range fits {
		obs, pred := regression.Predictions(cf.Result.Model, cf.Cluster.Members, axis)
		observed = append(observed, obs...)
		predicted = append(predicted, pred...)

		cfg.logger.Debug("cluster fitted",
			"strategy", strategy.String(),
			"cluster", cf.Cluster.Key,
			"model", kind.String(),
			"samples", cf.Cluster.Len(),
			"rmse", cf.Result.RMSE,
		)
	}

	pooled := regression.RMSE(observed, predicted)
	cfg.logger.Debug("pooled rmse",
		"strategy", strategy.String(),
		"model", kind.String(),
		"clusters", len(fits),
		"rmse", pooled,
	)

	return &ClusteredResult{Strategy: strategy, Clusters: fits, PooledRMSE: pooled}, nil
}
