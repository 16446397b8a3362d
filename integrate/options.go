// SPDX-License-Identifier: MIT
// Package integrate - functional options for quadrature and Monte Carlo.

package integrate

import (
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvnum/probability"
)

const (
	// DefaultNewtonIterations is the fixed Newton-Raphson budget per
	// Legendre root.
	DefaultNewtonIterations = 100

	// DefaultNewtonTolerance disables the early exit: every root receives
	// exactly the configured number of iterations.
	DefaultNewtonTolerance = 0.0

	// DefaultPoints is the number of Monte Carlo samples per iteration.
	DefaultPoints = 1000

	// DefaultIterations is the number of Monte Carlo estimates averaged.
	DefaultIterations = 50
)

// Options configures Gauss-Legendre node computation.
//
// NewtonIterations – maximum Newton-Raphson steps per root (>= 1).
// NewtonTolerance  – stop early once |step| <= tol; 0 disables the check.
type Options struct {
	NewtonIterations int
	NewtonTolerance  float64
}

// Option represents a functional option for quadrature.
type Option func(*Options)

// DefaultOptions returns the fixed-iteration policy.
func DefaultOptions() Options {
	return Options{
		NewtonIterations: DefaultNewtonIterations,
		NewtonTolerance:  DefaultNewtonTolerance,
	}
}

// WithNewtonIterations sets the Newton budget per root.
// Panics if k < 1.
func WithNewtonIterations(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic("integrate: WithNewtonIterations requires k >= 1")
		}
		o.NewtonIterations = k
	}
}

// WithNewtonTolerance enables the early exit on |step| <= tol.
// Panics on a negative or NaN tolerance.
func WithNewtonTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol >= 0) || math.IsInf(tol, 1) {
			panic("integrate: WithNewtonTolerance requires a finite tol >= 0")
		}
		o.NewtonTolerance = tol
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MonteCarloOptions configures MonteCarlo.
//
// Points     – samples drawn per iteration (>= 1).
// Iterations – independent estimates averaged (>= 1).
// RNG        – random source; nil means probability.RNGFromSeed(Seed).
// Seed       – seed used when RNG is nil (0 ⇒ probability.DefaultSeed).
// Logger     – receives one debug record per iteration; nil is silent.
type MonteCarloOptions struct {
	Points     int
	Iterations int
	RNG        *rand.Rand
	Seed       int64
	Logger     *slog.Logger
}

// MonteCarloOption represents a functional option for MonteCarlo.
type MonteCarloOption func(*MonteCarloOptions)

// DefaultMonteCarloOptions returns 1000 points × 50 iterations, seeded
// deterministically.
func DefaultMonteCarloOptions() MonteCarloOptions {
	return MonteCarloOptions{
		Points:     DefaultPoints,
		Iterations: DefaultIterations,
	}
}

// WithPoints sets the samples per iteration. Panics if n < 1.
func WithPoints(n int) MonteCarloOption {
	return func(o *MonteCarloOptions) {
		if n < 1 {
			panic("integrate: WithPoints requires n >= 1")
		}
		o.Points = n
	}
}

// WithIterations sets the number of averaged estimates. Panics if n < 1.
func WithIterations(n int) MonteCarloOption {
	return func(o *MonteCarloOptions) {
		if n < 1 {
			panic("integrate: WithIterations requires n >= 1")
		}
		o.Iterations = n
	}
}

// WithRNG injects the random source. The rng is consumed, not copied; do not
// share it with another goroutine during the call.
func WithRNG(rng *rand.Rand) MonteCarloOption {
	return func(o *MonteCarloOptions) {
		o.RNG = rng
	}
}

// WithSeed selects a deterministic source when no RNG is injected.
func WithSeed(seed int64) MonteCarloOption {
	return func(o *MonteCarloOptions) {
		o.Seed = seed
	}
}

// WithLogger attaches a logger for per-iteration debug records.
func WithLogger(l *slog.Logger) MonteCarloOption {
	return func(o *MonteCarloOptions) {
		o.Logger = l
	}
}

func buildMonteCarloOptions(opts []MonteCarloOption) MonteCarloOptions {
	o := DefaultMonteCarloOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.RNG == nil {
		o.RNG = probability.RNGFromSeed(o.Seed)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
