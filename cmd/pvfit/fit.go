package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/pvfit/analysis"
	"github.com/arloliu/pvfit/cluster"
	"github.com/arloliu/pvfit/compress"
	"github.com/arloliu/pvfit/regression"
	"github.com/arloliu/pvfit/report"
)

func newFitCmd(c *cli) *cobra.Command {
	var (
		input       string
		output      string
		compression string
		model       string
		strategy    string
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit one model kind, optionally per cluster",
		Example: `  pvfit fit -i samples.yaml --model lineal -o fit.pvfr
  pvfit fit -i samples.yaml --axis generacion --model polinomico --cluster temperatura`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind := regression.ModelTypeFromString(model)
			if !kind.Valid() {
				return fmt.Errorf("unknown model %q", model)
			}
			if strategy != "" && output != "" {
				return errors.New("--output is not supported with --cluster")
			}
			if err := envOverride(cmd, "compression", envCompression); err != nil {
				return err
			}
			codec, err := compress.ParseType(compression)
			if err != nil {
				return err
			}

			ds, err := loadSamples(input, c)
			if err != nil {
				return err
			}

			if strategy != "" {
				s, err := cluster.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				res, err := analysis.EvaluateClustered(ds, c.axis, kind, s, analysis.WithLogger(c.logger))
				if err != nil {
					return err
				}

				return printClustered(cmd.OutOrStdout(), res)
			}

			res, err := regression.Evaluate(ds, c.axis, kind)
			if err != nil {
				return err
			}
			if err := printFit(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if output == "" {
				return nil
			}

			data, err := report.EncodeFit(res, report.WithCompression(codec))
			if err != nil {
				return err
			}

			return writeReport(c, output, data, codec)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "sample file (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the fit envelope to this file")
	cmd.Flags().StringVar(&compression, "compression", "none", "envelope compression: none, zstd, s2 or lz4 [$"+envCompression+"]")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model kind: lineal, exponencial, potencial or polinomico")
	cmd.Flags().StringVar(&strategy, "cluster", "", "clustering strategy: clima, temperatura or inclinacion")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func writeReport(c *cli, path string, data []byte, codec compress.Type) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write report: %w", err)
	}
	c.logger.Info("report written", "file", path, "bytes", len(data), "compression", codec)

	return nil
}
