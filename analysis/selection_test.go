package analysis

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pvfit/cluster"
	"github.com/arloliu/pvfit/dataset"
	"github.com/arloliu/pvfit/regression"
)

func scores(adj ...float64) []ModelScore {
	out := make([]ModelScore, len(adj))
	for i, kind := range regression.ModelTypes()[:len(adj)] {
		out[i] = ModelScore{Type: kind, AdjustedRSquared: adj[i], ParamCount: kind.ParamCount()}
	}

	return out
}

func TestPickModel(t *testing.T) {
	tests := []struct {
		name   string
		scores []ModelScore
		want   regression.ModelType
	}{
		{"linear ties polynomial", scores(0.9, 0.8, 0.85, 0.9), regression.ModelTypeLinear},
		{"all equal", scores(0.5, 0.5, 0.5, 0.5), regression.ModelTypeLinear},
		{"exponential ties polynomial", scores(0.7, 0.92, 0.85, 0.92), regression.ModelTypeExponential},
		{"strictly higher polynomial", scores(0.9, 0.8, 0.85, 0.9000001), regression.ModelTypePolynomial},
		{"power best", scores(0.6, 0.7, 0.95, 0.94), regression.ModelTypePower},
		{"later tie keeps earlier", scores(0.6, 0.8, 0.8, 0.7), regression.ModelTypeExponential},
		{
			"non-polynomial replaces polynomial on tie",
			[]ModelScore{
				{Type: regression.ModelTypePolynomial, AdjustedRSquared: 0.9},
				{Type: regression.ModelTypeLinear, AdjustedRSquared: 0.9},
			},
			regression.ModelTypeLinear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.scores[pickModel(tt.scores)].Type)
		})
	}
}

func TestPickConfiguration(t *testing.T) {
	cfg, err := newConfig()
	require.NoError(t, err)

	const baseline = 10.0
	score := func(s cluster.Strategy, rmse float64) StrategyScore {
		return StrategyScore{Strategy: s, RMSE: rmse, Ratio: rmseRatio(rmse, baseline)}
	}

	tests := []struct {
		name   string
		scores []StrategyScore
		want   Configuration
	}{
		{"5% worse stays unclustered", []StrategyScore{score(cluster.StrategySkyState, 10.5)}, NoClustering()},
		{"5% better stays unclustered", []StrategyScore{score(cluster.StrategySkyState, 9.5)}, NoClustering()},
		{"lower band edge is inclusive", []StrategyScore{score(cluster.StrategyTemperature, 9)}, NoClustering()},
		{"upper band edge is inclusive", []StrategyScore{score(cluster.StrategyTemperature, 11)}, NoClustering()},
		{"20% better clusters", []StrategyScore{score(cluster.StrategyInclination, 8)}, ClusteredBy(cluster.StrategyInclination)},
		{"20% worse stays unclustered", []StrategyScore{score(cluster.StrategyInclination, 12)}, NoClustering()},
		{
			"lowest rmse outside band wins",
			[]StrategyScore{
				score(cluster.StrategySkyState, 8),
				score(cluster.StrategyTemperature, 7),
				score(cluster.StrategyInclination, 7.5),
			},
			ClusteredBy(cluster.StrategyTemperature),
		},
		{
			"equal rmse keeps earlier strategy",
			[]StrategyScore{
				score(cluster.StrategySkyState, 6),
				score(cluster.StrategyTemperature, 6),
			},
			ClusteredBy(cluster.StrategySkyState),
		},
		{
			"in-band strategy is skipped even when lowest",
			[]StrategyScore{
				score(cluster.StrategySkyState, 12),
				score(cluster.StrategyTemperature, 9.5),
			},
			NoClustering(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pickConfiguration(cfg, baseline, tt.scores))
		})
	}
}

func TestRMSERatio(t *testing.T) {
	require.Equal(t, 1.0, rmseRatio(0, 0))
	require.Equal(t, 1.0, rmseRatio(3, 0))
	require.InDelta(t, 1.05, rmseRatio(10.5, 10), 1e-12)
	require.InDelta(t, 0.95, rmseRatio(9.5, 10), 1e-12)
}

func TestConfiguration(t *testing.T) {
	require.False(t, NoClustering().Clustered)
	require.Equal(t, "sin clusters", NoClustering().String())
	require.Equal(t, "Sin clusters", NoClustering().Label())

	c := ClusteredBy(cluster.StrategyInclination)
	require.True(t, c.Clustered)
	require.Equal(t, "inclinacion", c.String())
	require.Equal(t, "Clusters por Inclinación", c.Label())
}

func TestSelectBestModel_ClusteringWins(t *testing.T) {
	report, err := SelectBestModel(skySplitDataset(), dataset.AxisIrradiancePower)
	require.NoError(t, err)

	require.Equal(t, regression.ModelTypeLinear, report.ChosenModel)
	require.Equal(t, dataset.AxisIrradiancePower, report.Axis)
	require.Len(t, report.ModelTable, 4)
	for i, kind := range regression.ModelTypes() {
		require.Equal(t, kind, report.ModelTable[i].Type)
		require.Equal(t, kind.ParamCount(), report.ModelTable[i].ParamCount)
	}

	require.Equal(t, report.BestFit.RMSE, report.RMSEWithoutClusters)
	require.Greater(t, report.RMSEWithoutClusters, 0.0)
	require.InDelta(t, 0.04, report.BestFit.Model.Coefficients[0], 1e-9)

	require.Len(t, report.StrategyTable, 3)
	sky := report.StrategyTable[0]
	require.Equal(t, cluster.StrategySkyState, sky.Strategy)
	require.InDelta(t, 0.0, sky.RMSE, 1e-9)
	require.Less(t, sky.Ratio, ToleranceLow)

	// constant temperature and inclination give one cluster identical to the full fit
	for _, s := range report.StrategyTable[1:] {
		require.Equal(t, 1.0, s.Ratio, s.Strategy.String())
		require.True(t, s.WithinTolerance())
	}

	require.Equal(t, ClusteredBy(cluster.StrategySkyState), report.ChosenConfiguration)
}

func TestSelectBestModel_ExactLine(t *testing.T) {
	report, err := SelectBestModel(exactLineDataset(), dataset.AxisIrradiancePower)
	require.NoError(t, err)

	require.Equal(t, regression.ModelTypeLinear, report.ChosenModel)
	require.Equal(t, 1.0, report.ModelTable[0].AdjustedRSquared)
	// the quadratic reproduces the line too and at best ties, which keeps linear
	require.Equal(t, regression.ModelTypePolynomial, report.ModelTable[3].Type)
	require.InDelta(t, 1.0, report.ModelTable[3].AdjustedRSquared, 1e-9)
	require.Equal(t, 0.0, report.RMSEWithoutClusters)
	for _, s := range report.StrategyTable {
		require.Equal(t, 1.0, s.Ratio)
	}
	require.Equal(t, NoClustering(), report.ChosenConfiguration)
}

func TestSelectBestModel_ToleranceBand(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  Configuration
		check func(t *testing.T, sky StrategyScore)
	}{
		{
			name:  "six percent lower rmse stays unclustered",
			delta: 1.2,
			want:  NoClustering(),
			check: func(t *testing.T, sky StrategyScore) {
				require.GreaterOrEqual(t, sky.Ratio, ToleranceLow)
				require.Less(t, sky.Ratio, 1.0)
				require.True(t, sky.WithinTolerance())
			},
		},
		{
			name:  "thirty percent lower rmse clusters by sky",
			delta: 4,
			want:  ClusteredBy(cluster.StrategySkyState),
			check: func(t *testing.T, sky StrategyScore) {
				require.Less(t, sky.Ratio, ToleranceLow)
				require.False(t, sky.WithinTolerance())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := SelectBestModel(offsetSkyDataset(tt.delta), dataset.AxisIrradiancePower)
			require.NoError(t, err)

			require.Equal(t, regression.ModelTypeLinear, report.ChosenModel)
			sky := report.StrategyTable[0]
			require.Equal(t, cluster.StrategySkyState, sky.Strategy)
			require.Less(t, sky.RMSE, report.RMSEWithoutClusters)
			tt.check(t, sky)
			require.Equal(t, tt.want, report.ChosenConfiguration)
		})
	}
}

func TestSelectBestModel_NarrowIrradianceRange(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		report, err := SelectBestModel(narrowIrradianceDataset(), dataset.AxisIrradiancePower, WithParallel(parallel))
		require.NoError(t, err)

		poly := report.ModelTable[3]
		require.Equal(t, regression.ModelTypePolynomial, poly.Type)
		require.Greater(t, poly.AdjustedRSquared, 0.5)
		require.Equal(t, regression.ModelTypeLinear, report.ChosenModel)
		require.InDelta(t, 0.70538, report.RMSEWithoutClusters, 1e-4)
		require.Equal(t, NoClustering(), report.ChosenConfiguration)

		clustered, err := EvaluateClustered(narrowIrradianceDataset(), dataset.AxisIrradiancePower,
			regression.ModelTypePolynomial, cluster.StrategySkyState)
		require.NoError(t, err)
		require.Len(t, clustered.Clusters, 2)
	}
}

func TestSelectBestModel_ParallelMatchesSequential(t *testing.T) {
	for _, ds := range []dataset.Dataset{fieldDataset(), skySplitDataset(), exactLineDataset()} {
		for _, axis := range []dataset.Axis{dataset.AxisIrradiancePower, dataset.AxisPowerGeneration} {
			seq, err := SelectBestModel(ds, axis)
			require.NoError(t, err)
			par, err := SelectBestModel(ds, axis, WithParallel(true))
			require.NoError(t, err)

			require.Equal(t, seq, par)
		}
	}
}

func TestSelectBestModel_Deterministic(t *testing.T) {
	first, err := SelectBestModel(fieldDataset(), dataset.AxisIrradiancePower)
	require.NoError(t, err)
	second, err := SelectBestModel(fieldDataset(), dataset.AxisIrradiancePower)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSelectBestModel_ConfigurationFollowsTables(t *testing.T) {
	report, err := SelectBestModel(fieldDataset(), dataset.AxisIrradiancePower)
	require.NoError(t, err)

	best := report.RMSEWithoutClusters
	want := NoClustering()
	for _, s := range report.StrategyTable {
		if s.Ratio >= 0.9 && s.Ratio <= 1.1 {
			continue
		}
		if s.RMSE < best {
			best = s.RMSE
			want = ClusteredBy(s.Strategy)
		}
	}
	require.Equal(t, want, report.ChosenConfiguration)

	winner := report.ModelTable[pickModel(report.ModelTable)]
	require.Equal(t, winner.Type, report.ChosenModel)
	for _, row := range report.ModelTable {
		require.LessOrEqual(t, row.AdjustedRSquared, winner.AdjustedRSquared)
	}
}

func TestSelectBestModel_Errors(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		_, err := SelectBestModel(nil, dataset.AxisIrradiancePower)
		require.ErrorIs(t, err, regression.ErrInsufficientData)
		require.Contains(t, err.Error(), "lineal")
	})

	t.Run("cluster fit failure aborts selection", func(t *testing.T) {
		ds := skySplitDataset()
		// lone cold sample cannot support a two-parameter fit
		ds = append(ds, dataset.Sample{Irradiance: 550, Power: 70, Generation: 69, SkyState: dataset.SkyClear, Temperature: 2, Inclination: 25})

		for _, parallel := range []bool{false, true} {
			_, err := SelectBestModel(ds, dataset.AxisIrradiancePower, WithParallel(parallel))
			require.ErrorIs(t, err, regression.ErrInsufficientData)
			require.Contains(t, err.Error(), "temperatura")
			require.Contains(t, err.Error(), `"fria"`)
		}
	})

	t.Run("invalid axis", func(t *testing.T) {
		_, err := SelectBestModel(fieldDataset(), dataset.Axis(7))
		require.Error(t, err)
	})
}

func TestSelectBestModel_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := SelectBestModel(skySplitDataset(), dataset.AxisIrradiancePower, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "model scored")
	require.Contains(t, out, "model=polinomico")
	require.Contains(t, out, "model chosen")
	require.Contains(t, out, "strategy within tolerance")
	require.Contains(t, out, "configuration=clima")
}
