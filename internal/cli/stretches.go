// SPDX-License-Identifier: MIT
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/integrate"
	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/internal/plotting"
)

type stretchesOutput struct {
	Force     float64             `yaml:"force"`
	Moment    float64             `yaml:"moment"`
	Stretches []integrate.Stretch `yaml:"stretches"`
}

func newStretchesCommand(a *app) *cobra.Command {
	var data, plot string
	cmd := &cobra.Command{
		Use:   "stretches",
		Short: "Constant-sign decomposition of a sampled profile",
		Long: `Reads a profile (YAML path/values or CSV path,value), splits it at its
zero crossings and prints each stretch with its resultant and centroid,
together with the total force and the moment about x = 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := dataset.LoadProfile(data)
			if err != nil {
				return err
			}
			stretches, err := integrate.ResultantStretches(p.Path, p.Values)
			if err != nil {
				return err
			}
			force, err := integrate.TrapezoidalForce(p.Path, p.Values)
			if err != nil {
				return err
			}
			moment, err := integrate.TrapezoidalMoment(p.Path, p.Values, 0)
			if err != nil {
				return err
			}
			a.logger.Info("stretches computed",
				slog.Int("samples", len(p.Path)), slog.Int("stretches", len(stretches)))

			if plot != "" {
				size := plotting.Size{Width: a.cfg.Plot.Width, Height: a.cfg.Plot.Height}
				if err = plotting.StretchPlot(p.Path, p.Values, stretches, size, plot); err != nil {
					return err
				}
				a.logger.Info("plot written", slog.String("path", plot))
			}

			return writeYAML(cmd.OutOrStdout(), stretchesOutput{Force: force, Moment: moment, Stretches: stretches})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "profile file (.yaml, .yml or .csv)")
	cmd.Flags().StringVar(&plot, "plot", "", "write a chart of the stretches to this file")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
