// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/internal/plotting"
	"github.com/katalvlaran/lvnum/regression"
)

// errNoModel is returned when too few finite samples remain for a fit.
var errNoModel = errors.New("not enough valid samples to fit a model")

type fitFlags struct {
	data   string
	kind   string
	order  int
	solver string
	plot   string
}

func newFitCommand(a *app) *cobra.Command {
	f := &fitFlags{}
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Least-squares regression of (x, y) samples",
		Long: `Fits samples read from a YAML (points or x/y) or CSV (x,y) file and
prints the model, its metrics and its equation as YAML.

Kinds: linear, quadratic, cubic, quartic, polynomial (--order),
logarithmic, exponential, power.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFit(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.data, "data", "", "samples file (.yaml, .yml or .csv)")
	cmd.Flags().StringVar(&f.kind, "kind", "", "model kind (config regression.kind)")
	cmd.Flags().IntVar(&f.order, "order", 0, "degree for --kind polynomial (config regression.order)")
	cmd.Flags().StringVar(&f.solver, "solver", "", "normal or qr (config regression.solver)")
	cmd.Flags().StringVar(&f.plot, "plot", "", "write a chart of the fit to this file (.png, .svg, ...)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (a *app) runFit(cmd *cobra.Command, f *fitFlags) error {
	rc := a.cfg.Regression
	if cmd.Flags().Changed("kind") {
		rc.Kind = f.kind
	}
	if cmd.Flags().Changed("order") {
		rc.Order = f.order
	}
	if cmd.Flags().Changed("solver") {
		rc.Solver = f.solver
	}
	solver, err := regression.ParseSolver(rc.Solver)
	if err != nil {
		return err
	}
	if rc.Order < 0 {
		return regression.ErrInvalidOrder
	}

	points, err := dataset.LoadPoints(f.data)
	if err != nil {
		return err
	}
	kind := regression.Kind(rc.Kind)
	if !kind.Valid() {
		a.logger.Warn("unknown model kind, using default",
			slog.String("kind", rc.Kind), slog.String("default", string(regression.DefaultKind)))
	}
	if dropped := len(points) - len(regression.CleanPoints(points)); dropped > 0 {
		a.logger.Info("dropped non-finite samples", slog.Int("count", dropped))
	}

	m, err := regression.LeastSquares(kind, points, regression.WithOrder(rc.Order), regression.WithSolver(solver))
	if err != nil {
		return err
	}
	if m == nil {
		return errNoModel
	}
	a.logger.Info("fit complete",
		slog.String("kind", string(m.Kind)),
		slog.Int("samples", len(points)),
		slog.Float64("r2", m.Metrics.R2Score))

	if f.plot != "" {
		size := plotting.Size{Width: a.cfg.Plot.Width, Height: a.cfg.Plot.Height}
		if err = plotting.FitPlot(m, regression.CleanPoints(points), size, f.plot); err != nil {
			return err
		}
		a.logger.Info("plot written", slog.String("path", f.plot))
	}

	return writeYAML(cmd.OutOrStdout(), m)
}
