package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/pvfit/analysis"
	"github.com/arloliu/pvfit/compress"
	"github.com/arloliu/pvfit/report"
)

func newSelectCmd(c *cli) *cobra.Command {
	var (
		input       string
		output      string
		compression string
		parallel    bool
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the best model kind and clustering configuration",
		Example: `  pvfit select -i samples.yaml
  pvfit select -i samples.json --parallel -o report.pvfr --compression zstd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			rep, err := analysis.SelectBestModel(ds, c.axis,
				analysis.WithLogger(c.logger),
				analysis.WithParallel(parallel),
			)
			if err != nil {
				return err
			}

			if err := printSelection(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if output == "" {
				return nil
			}

			data, err := report.EncodeSelection(rep, report.WithCompression(codec))
			if err != nil {
				return err
			}

			return writeReport(c, output, data, codec)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "sample file (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report envelope to this file")
	cmd.Flags().StringVar(&compression, "compression", "none", "report compression: none, zstd, s2 or lz4 [$"+envCompression+"]")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate model kinds and strategies concurrently")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
