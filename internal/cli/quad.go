// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/integrate"
	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/mathx"
)

var (
	errQuadSource   = errors.New("exactly one of --poly or --data is required")
	errQuadNoResult = errors.New("profile has fewer than two breakpoints")
)

type quadOutput struct {
	Value     float64 `yaml:"value"`
	Order     int     `yaml:"order"`
	Intervals int     `yaml:"intervals"`
}

type quadFlags struct {
	poly     string
	from, to float64
	data     string
	order    int
}

func newQuadCommand(a *app) *cobra.Command {
	f := &quadFlags{}
	cmd := &cobra.Command{
		Use:   "quad",
		Short: "Gauss-Legendre quadrature",
		Long: `Integrates either a polynomial (--poly c0,c1,... lowest power first, over
[--from, --to]) or the piecewise-linear interpolant of a profile file
(--data), one Gauss-Legendre rule per interval between samples.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runQuad(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.poly, "poly", "", "polynomial coefficients, lowest power first")
	cmd.Flags().Float64Var(&f.from, "from", 0, "lower bound for --poly")
	cmd.Flags().Float64Var(&f.to, "to", 1, "upper bound for --poly")
	cmd.Flags().StringVar(&f.data, "data", "", "profile file (.yaml, .yml or .csv)")
	cmd.Flags().IntVar(&f.order, "order", 0, "number of Gauss points (config quadrature.order)")

	return cmd
}

func (a *app) runQuad(cmd *cobra.Command, f *quadFlags) error {
	if (f.poly == "") == (f.data == "") {
		return errQuadSource
	}
	order := a.cfg.Quadrature.Order
	if cmd.Flags().Changed("order") {
		order = f.order
	}
	opts := []integrate.Option{integrate.WithNewtonIterations(a.cfg.Quadrature.NewtonIterations)}
	if a.cfg.Quadrature.NewtonTolerance > 0 {
		opts = append(opts, integrate.WithNewtonTolerance(a.cfg.Quadrature.NewtonTolerance))
	}

	out := quadOutput{Order: order, Intervals: 1}
	if f.poly != "" {
		coeffs, err := parseFloats(f.poly)
		if err != nil {
			return err
		}
		if out.Value, err = integrate.GaussLegendre(integrate.Polynomial(coeffs...), f.from, f.to, order, opts...); err != nil {
			return err
		}
	} else {
		p, err := dataset.LoadProfile(f.data)
		if err != nil {
			return err
		}
		// fails only for fewer than two knots, where no interval is evaluated
		interp := func(x float64) float64 {
			y, _ := mathx.PiecewiseLinearInterpolation(p.Path, p.Values, x)
			return y
		}
		var ok bool
		if out.Value, ok, err = integrate.GaussLegendreByIntervals(interp, p.Path, order, opts...); err != nil {
			return err
		}
		if !ok {
			return errQuadNoResult
		}
		out.Intervals = len(p.Path) - 1
	}
	a.logger.Info("quadrature complete", slog.Int("order", order), slog.Float64("value", out.Value))

	return writeYAML(cmd.OutOrStdout(), out)
}
