package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/pvfit/dataset"
)

const (
	envAxis        = "PVFIT_AXIS"
	envCompression = "PVFIT_COMPRESSION"
	envLogLevel    = "PVFIT_LOG_LEVEL"
)

// cli holds the flags shared by every subcommand and the state derived from them.
type cli struct {
	logLevel string
	axisName string

	axis   dataset.Axis
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "pvfit",
		Short: "Fit photovoltaic curves and select the best model",
		Long: `pvfit fits linear, exponential, power and quadratic curves to photovoltaic
samples, optionally per cluster, and selects the model kind and clustering
configuration that best describe a dataset.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error) [$"+envLogLevel+"]")
	flags.StringVar(&c.axisName, "axis", "potencia", "axis to fit: potencia or generacion [$"+envAxis+"]")

	root.AddCommand(newFitCmd(c), newSelectCmd(c), newInspectCmd(c))

	return root
}

// setup applies environment overrides, then parses the shared flags.
func (c *cli) setup(cmd *cobra.Command) error {
	if err := envOverride(cmd, "log-level", envLogLevel); err != nil {
		return err
	}
	if err := envOverride(cmd, "axis", envAxis); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	axis, err := dataset.ParseAxis(c.axisName)
	if err != nil {
		return err
	}
	c.axis = axis

	return nil
}

// envOverride sets flag name from environment variable key unless the flag was given
// on the command line.
func envOverride(cmd *cobra.Command, name, key string) error {
	f := cmd.Flags().Lookup(name)
	if f == nil || f.Changed {
		return nil
	}

	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return nil
	}
	if err := cmd.Flags().Set(name, val); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	return nil
}
