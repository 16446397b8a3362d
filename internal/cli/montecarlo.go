// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/integrate"
	"github.com/katalvlaran/lvnum/internal/dataset"
)

var errBadSampling = errors.New("--points and --iterations must be >= 1")

type monteCarloOutput struct {
	Estimate   float64 `yaml:"estimate"`
	Dimension  int     `yaml:"dimension"`
	Shapes     int     `yaml:"shapes"`
	Points     int     `yaml:"points"`
	Iterations int     `yaml:"iterations"`
	Seed       int64   `yaml:"seed"`
}

func newMonteCarloCommand(a *app) *cobra.Command {
	var (
		data              string
		points, iteration int
		seed              int64
	)
	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Area or volume of a union of shapes",
		Long: `Reads a YAML shape set (rectangle, circle, prism, sphere) and estimates
the area (2D) or volume (3D) of its union by uniform sampling of the
joint bounding box. Per-iteration estimates are logged at debug level.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mc := a.cfg.MonteCarlo
			if cmd.Flags().Changed("points") {
				mc.Points = points
			}
			if cmd.Flags().Changed("iterations") {
				mc.Iterations = iteration
			}
			if cmd.Flags().Changed("seed") {
				mc.Seed = seed
			}
			if mc.Points < 1 || mc.Iterations < 1 {
				return errBadSampling
			}

			shapes, err := dataset.LoadShapes(data)
			if err != nil {
				return err
			}
			estimate, err := integrate.MonteCarlo(shapes,
				integrate.WithPoints(mc.Points),
				integrate.WithIterations(mc.Iterations),
				integrate.WithSeed(mc.Seed),
				integrate.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			dim := shapes[0].BoundingBox().Dim()
			a.logger.Info("monte carlo complete", slog.Int("dimension", dim), slog.Float64("estimate", estimate))

			return writeYAML(cmd.OutOrStdout(), monteCarloOutput{
				Estimate:   estimate,
				Dimension:  dim,
				Shapes:     len(shapes),
				Points:     mc.Points,
				Iterations: mc.Iterations,
				Seed:       mc.Seed,
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "YAML shape set")
	cmd.Flags().IntVar(&points, "points", 0, "samples per iteration (config montecarlo.points)")
	cmd.Flags().IntVar(&iteration, "iterations", 0, "averaged estimates (config montecarlo.iterations)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (config montecarlo.seed)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
