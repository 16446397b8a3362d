// SPDX-License-Identifier: MIT
// Package regression - functional options.

package regression

import "fmt"

// Solver selects how the polynomial least-squares system is solved.
type Solver int

const (
	// SolverNormalEquations inverts AᵗA by Gauss-Jordan elimination.
	SolverNormalEquations Solver = iota

	// SolverQR solves min‖Ac - y‖ with a QR factorization of A, avoiding the
	// squared condition number of AᵗA.
	SolverQR
)

// String returns "normal" or "qr".
func (s Solver) String() string {
	switch s {
	case SolverNormalEquations:
		return "normal"
	case SolverQR:
		return "qr"
	}

	return fmt.Sprintf("Solver(%d)", int(s))
}

// ParseSolver maps "normal" and "qr" to their Solver.
func ParseSolver(name string) (Solver, error) {
	switch name {
	case "", "normal":
		return SolverNormalEquations, nil
	case "qr":
		return SolverQR, nil
	}

	return 0, fmt.Errorf("regression: unknown solver %q", name)
}

// DefaultPolynomialOrder is used by LeastSquares(KindPolynomial, ...) when
// WithOrder is not given.
const DefaultPolynomialOrder = 2

// Options configures a fit.
//
// Order  – degree for KindPolynomial (>= 0).
// Solver – linear-system strategy for every polynomial kind.
type Options struct {
	Order  int
	Solver Solver
}

// Option represents a functional option for fits.
type Option func(*Options)

// DefaultOptions returns order 2 with the normal-equations solver.
func DefaultOptions() Options {
	return Options{
		Order:  DefaultPolynomialOrder,
		Solver: SolverNormalEquations,
	}
}

// WithOrder sets the degree used by KindPolynomial. Panics if k < 0.
func WithOrder(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic("regression: WithOrder requires k >= 0")
		}
		o.Order = k
	}
}

// WithSolver selects the polynomial solver. Panics on an unknown value.
func WithSolver(s Solver) Option {
	return func(o *Options) {
		if s != SolverNormalEquations && s != SolverQR {
			panic(fmt.Sprintf("regression: WithSolver got unknown %v", s))
		}
		o.Solver = s
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
