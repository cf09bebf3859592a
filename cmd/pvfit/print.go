package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arloliu/pvfit/analysis"
	"github.com/arloliu/pvfit/regression"
	"github.com/arloliu/pvfit/report"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printFit(w io.Writer, res *regression.FitResult) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "model:\t%s\n", res.Model.Type)
	fmt.Fprintf(tw, "formula:\t%s\n", res.Model.Formula)
	fmt.Fprintf(tw, "axes:\t%s -> %s\n", res.XLabel, res.YLabel)
	fmt.Fprintf(tw, "samples:\t%d (%d above %.0f kW for R²)\n", res.SampleCount, res.R2SampleCount, regression.R2PowerThreshold)
	fmt.Fprintf(tw, "R²:\t%.4f\n", res.RSquared)
	fmt.Fprintf(tw, "adjusted R²:\t%.4f\n", res.AdjustedRSquared)
	fmt.Fprintf(tw, "RMSE:\t%.4f\n", res.RMSE)

	return tw.Flush()
}

func printClustered(w io.Writer, res *analysis.ClusteredResult) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "CLUSTER\tSAMPLES\tFORMULA\tR²\tADJ R²\tRMSE\n")
	for _, cf := range res.Clusters {
		r := cf.Result
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\t%.4f\t%.4f\n",
			cf.Cluster.Label, cf.Cluster.Len(), r.Model.Formula, r.RSquared, r.AdjustedRSquared, r.RMSE)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "pooled RMSE (%s): %.4f\n", res.Strategy, res.PooledRMSE)

	return err
}

func printSelection(w io.Writer, rep *analysis.SelectionReport) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "MODEL\tPARAMS\tADJ R²\t\n")
	for _, row := range rep.ModelTable {
		mark := ""
		if row.Type == rep.ChosenModel {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%s\n", row.Type, row.ParamCount, row.AdjustedRSquared, mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nbest fit: %s\n\n", rep.BestFit.Model.Formula)

	tw = newTable(w)
	fmt.Fprintf(tw, "CONFIGURATION\tRMSE\tRATIO\t\n")
	fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t\n", analysis.NoClustering(), rep.RMSEWithoutClusters, 1.0)
	for _, row := range rep.StrategyTable {
		note := ""
		if row.WithinTolerance() {
			note = "within tolerance"
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%s\n", row.Strategy, row.RMSE, row.Ratio, note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nchosen: %s with %s\n", rep.ChosenModel, rep.ChosenConfiguration.Label())

	return err
}

func printHeader(w io.Writer, h report.Header, size int) error {
	order := "little-endian"
	if h.BigEndian {
		order = "big-endian"
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "kind:\t%s\n", h.Kind)
	fmt.Fprintf(tw, "version:\t%d\n", h.Version)
	fmt.Fprintf(tw, "compression:\t%s\n", h.Compression)
	fmt.Fprintf(tw, "byte order:\t%s\n", order)
	fmt.Fprintf(tw, "payload:\t%d bytes (%d on disk)\n", h.PayloadSize, size)
	fmt.Fprintf(tw, "checksum:\t%016x\n\n", h.Checksum)

	return tw.Flush()
}
