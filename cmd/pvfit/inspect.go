package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/pvfit/report"
)

func newInspectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <report>",
		Short: "Decode and print a report envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read report: %w", err)
			}

			h, err := report.ReadHeader(data)
			if err != nil {
				return err
			}
			c.logger.Debug("envelope header", "kind", h.Kind, "version", h.Version, "compression", h.Compression)

			out := cmd.OutOrStdout()
			if err := printHeader(out, h, len(data)); err != nil {
				return err
			}

			switch h.Kind {
			case report.KindFit:
				res, err := report.DecodeFit(data)
				if err != nil {
					return err
				}

				return printFit(out, res)
			default:
				rep, err := report.DecodeSelection(data)
				if err != nil {
					return err
				}

				return printSelection(out, rep)
			}
		},
	}
}
