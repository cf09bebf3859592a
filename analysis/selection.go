package analysis

import (
	"fmt"

	"github.com/arloliu/pvfit/cluster"
	"github.com/arloliu/pvfit/dataset"
	"github.com/arloliu/pvfit/regression"
)

// Clustering is kept off unless a strategy changes the RMSE by more than 10% in either
// direction relative to the unclustered fit.
const (
	ToleranceLow  = 0.9
	ToleranceHigh = 1.1
)

// ModelScore is one row of the model comparison table.
type ModelScore struct {
	Type             regression.ModelType
	AdjustedRSquared float64
	ParamCount       int
}

// StrategyScore is one row of the clustering comparison table.
type StrategyScore struct {
	Strategy cluster.Strategy
	// RMSE is the pooled RMSE of the winning model kind under Strategy.
	RMSE float64
	// Ratio is RMSE divided by the unclustered RMSE.
	Ratio float64
}

// WithinTolerance reports whether the ratio falls in the band where clustering is not
// considered worth its extra complexity.
func (s StrategyScore) WithinTolerance() bool {
	return s.Ratio >= ToleranceLow && s.Ratio <= ToleranceHigh
}

// Configuration is the clustering decision: either no clustering or one strategy.
type Configuration struct {
	Clustered bool
	Strategy  cluster.Strategy
}

// NoClustering returns the unclustered configuration.
func NoClustering() Configuration {
	return Configuration{}
}

// ClusteredBy returns the configuration that clusters with strategy.
func ClusteredBy(strategy cluster.Strategy) Configuration {
	return Configuration{Clustered: true, Strategy: strategy}
}

// String returns "sin clusters" or the strategy discriminator.
func (c Configuration) String() string {
	if !c.Clustered {
		return "sin clusters"
	}

	return c.Strategy.String()
}

// Label returns the display name of the configuration.
func (c Configuration) Label() string {
	if !c.Clustered {
		return "Sin clusters"
	}

	return "Clusters por " + c.Strategy.Label()
}

// SelectionReport is the outcome of SelectBestModel.
type SelectionReport struct {
	Axis dataset.Axis
	// ChosenModel is the model kind with the highest adjusted R².
	ChosenModel regression.ModelType
	// BestFit is the unclustered fit of ChosenModel.
	BestFit *regression.FitResult
	// ModelTable holds one row per model kind in comparison order.
	ModelTable []ModelScore
	// RMSEWithoutClusters is the unclustered RMSE of ChosenModel.
	RMSEWithoutClusters float64
	// StrategyTable holds one row per clustering strategy in comparison order.
	StrategyTable []StrategyScore
	ChosenConfiguration Configuration
}

// SelectBestModel picks the model kind and clustering configuration for ds.
//
// Model kinds are compared by adjusted R² on the unclustered dataset in the order
// lineal, exponencial, potencial, polinomico. The current winner, starting with lineal,
// is replaced only by a strictly higher adjusted R², or by an equal one when the current
// winner is polinomico.
//
// With the winning kind, each clustering strategy's pooled RMSE is divided by the
// unclustered RMSE. Strategies whose ratio lies in [ToleranceLow, ToleranceHigh] are
// ignored. Among the rest, a strategy is chosen only if its RMSE is strictly lower than the
// best seen so far, starting from the unclustered RMSE.
//
// Any fit error aborts the selection and is returned wrapped with the model kind or
// strategy that failed.
func SelectBestModel(ds dataset.Dataset, axis dataset.Axis, opts ...Option) (*SelectionReport, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	kinds := regression.ModelTypes()
	fits, err := runIndexed(cfg.parallel, len(kinds), func(i int) (*regression.FitResult, error) {
		res, err := regression.Evaluate(ds, axis, kinds[i])
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", kinds[i], err)
		}

		return res, nil
	})
	if err != nil {
		return nil, err
	}

	modelTable := make([]ModelScore, len(fits))
	for i, res := range fits {
		modelTable[i] = ModelScore{
			Type:             kinds[i],
			AdjustedRSquared: res.AdjustedRSquared,
			ParamCount:       res.Model.ParamCount,
		}
		cfg.logger.Debug("model scored",
			"model", kinds[i].String(),
			"adjusted_r2", res.AdjustedRSquared,
			"r2", res.RSquared,
			"params", res.Model.ParamCount,
		)
	}

	winner := pickModel(modelTable)
	best := fits[winner]
	chosen := modelTable[winner].Type
	baseline := best.RMSE
	cfg.logger.Debug("model chosen", "model", chosen.String(), "rmse", baseline)

	strategies := cluster.Strategies()
	strategyTable, err := runIndexed(cfg.parallel, len(strategies), func(i int) (StrategyScore, error) {
		res, err := evaluateClustered(cfg, ds, axis, chosen, strategies[i])
		if err != nil {
			return StrategyScore{}, fmt.Errorf("evaluate %s with %s clustering: %w", chosen, strategies[i], err)
		}

		return StrategyScore{
			Strategy: strategies[i],
			RMSE:     res.PooledRMSE,
			Ratio:    rmseRatio(res.PooledRMSE, baseline),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	configuration := pickConfiguration(cfg, baseline, strategyTable)
	cfg.logger.Debug("configuration chosen", "configuration", configuration.String())

	return &SelectionReport{
		Axis:                axis,
		ChosenModel:         chosen,
		BestFit:             best,
		ModelTable:          modelTable,
		RMSEWithoutClusters: baseline,
		StrategyTable:       strategyTable,
		ChosenConfiguration: configuration,
	}, nil
}

// pickModel returns the index of the winning row of scores.
func pickModel(scores []ModelScore) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		cur, cand := scores[best], scores[i]
		switch {
		case cand.AdjustedRSquared > cur.AdjustedRSquared:
			best = i
		case cand.AdjustedRSquared == cur.AdjustedRSquared &&
			cur.Type == regression.ModelTypePolynomial &&
			cand.Type != regression.ModelTypePolynomial:
			best = i
		}
	}

	return best
}

// rmseRatio divides a clustered RMSE by the unclustered one.
// A zero baseline cannot be improved on, so its ratio is 1.
func rmseRatio(rmse, baseline float64) float64 {
	if baseline == 0 {
		return 1
	}

	return rmse / baseline
}

func pickConfiguration(cfg *Config, baseline float64, scores []StrategyScore) Configuration {
	chosen := NoClustering()
	bestRMSE := baseline
	for _, s := range scores {
		if s.WithinTolerance() {
			cfg.logger.Debug("strategy within tolerance",
				"strategy", s.Strategy.String(),
				"rmse", s.RMSE,
				"ratio", s.Ratio,
			)

			continue
		}
		if s.RMSE < bestRMSE {
			chosen = ClusteredBy(s.Strategy)
			bestRMSE = s.RMSE
		}
		cfg.logger.Debug("strategy compared",
			"strategy", s.Strategy.String(),
			"rmse", s.RMSE,
			"ratio", s.Ratio,
			"best", chosen.String(),
		)
	}

	return chosen
}
