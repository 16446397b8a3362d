// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/integrate"
	"github.com/katalvlaran/lvnum/rootfind"
)

type rootOutput struct {
	Root  float64 `yaml:"root"`
	Value float64 `yaml:"value"`
	// Bracketed is false when f(lower) and f(upper) share a sign: the
	// result is then the endpoint nearest to a sign change, not a root.
	Bracketed bool `yaml:"bracketed"`
}

type rootFlags struct {
	poly          string
	lower, upper  float64
	tol           float64
	maxIterations int
}

func newFindRootCommand(a *app) *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "root",
		Short: "Brent root of a polynomial",
		Long: `Runs Brent's method on the polynomial --poly c0,c1,... (lowest power first)
over [--lower, --upper].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRoot(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.poly, "poly", "", "polynomial coefficients, lowest power first")
	cmd.Flags().Float64Var(&f.lower, "lower", -1, "bracket lower end")
	cmd.Flags().Float64Var(&f.upper, "upper", 1, "bracket upper end")
	cmd.Flags().Float64Var(&f.tol, "tol", 0, "absolute tolerance on x (config rootfind.tolerance)")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", 0, "iteration budget (config rootfind.max_iterations)")
	_ = cmd.MarkFlagRequired("poly")

	return cmd
}

func (a *app) runRoot(cmd *cobra.Command, f *rootFlags) error {
	rc := a.cfg.RootFind
	if cmd.Flags().Changed("tol") {
		rc.Tolerance = f.tol
	}
	if cmd.Flags().Changed("max-iterations") {
		rc.MaxIterations = f.maxIterations
	}
	if rc.MaxIterations < 1 {
		return errors.New("--max-iterations must be >= 1")
	}
	coeffs, err := parseFloats(f.poly)
	if err != nil {
		return err
	}
	p := integrate.Polynomial(coeffs...)

	x, err := rootfind.BrentWith(p, f.lower, f.upper, rc.Tolerance, rootfind.WithMaxIterations(rc.MaxIterations))
	if err != nil {
		return err
	}
	out := rootOutput{Root: x, Value: p(x), Bracketed: p(f.lower)*p(f.upper) <= 0}
	if !out.Bracketed {
		a.logger.Warn("no sign change in bracket, result is the nearest endpoint",
			slog.Float64("lower", f.lower), slog.Float64("upper", f.upper))
	}
	a.logger.Info("root found", slog.Float64("root", x))

	return writeYAML(cmd.OutOrStdout(), out)
}
