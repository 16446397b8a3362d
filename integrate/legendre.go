// SPDX-License-Identifier: MIT
// Package integrate - Legendre polynomials, roots and Gauss weights.
//
// P_n(x) = Σ_{m=0}^{⌊n/2⌋} coef[m] x^(n-2m) with
// coef[m] = (-1)^m (2n-2m)! / (2^n m! (n-m)! (n-2m)!).
// The monomial form loses precision to cancellation as n grows, which
// bounds the order by MaxOrder.

package integrate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/mathx"
)

// MaxOrder is the largest supported quadrature order. Up to it the
// rule integrates x² on [0, 1] to within 1e-12; from about n = 20 on the
// cancellation in P_n pushes the nodes off by more than 1e-11, and beyond
// n = 30 the results are no longer usable.
const MaxOrder = 18

func validateOrder(n int) error {
	if n < 1 || n > MaxOrder {
		return fmt.Errorf("n=%d not in [1, %d]: %w", n, MaxOrder, ErrInvalidOrder)
	}

	return nil
}

// LegendreCoefficients returns coef[0..⌊n/2⌋] of P_n, highest power first.
// Errors: ErrInvalidOrder.
func LegendreCoefficients(n int) ([]float64, error) {
	if err := validateOrder(n); err != nil {
		return nil, integrateErrorf("LegendreCoefficients", err)
	}

	return legendreCoefficients(n), nil
}

func legendreCoefficients(n int) []float64 {
	coef := make([]float64, n/2+1)
	pow2n := math.Pow(2, float64(n))
	sign := 1.0
	for m := range coef {
		coef[m] = sign * mathx.Factorial(2*n-2*m) /
			(pow2n * mathx.Factorial(m) * mathx.Factorial(n-m) * mathx.Factorial(n-2*m))
		sign = -sign
	}

	return coef
}

// legendre evaluates P_n and P_n' from one coefficient set.
type legendre struct {
	n     int
	coef  []float64
	dcoef []float64
}

func newLegendre(n int) legendre {
	coef := legendreCoefficients(n)
	// for even n the last term is the constant, whose derivative vanishes
	terms := len(coef)
	if n%2 == 0 {
		terms--
	}
	dcoef := make([]float64, terms)
	for i := range dcoef {
		dcoef[i] = float64(n-2*i) * coef[i]
	}

	return legendre{n: n, coef: coef, dcoef: dcoef}
}

func (l legendre) p(x float64) float64 {
	var sum float64
	for i, c := range l.coef {
		sum += c * math.Pow(x, float64(l.n-2*i))
	}

	return sum
}

func (l legendre) dp(x float64) float64 {
	var sum float64
	for i, c := range l.dcoef {
		sum += c * math.Pow(x, float64(l.n-1-2*i))
	}

	return sum
}

// LegendreNodes returns the n roots of P_n on (-1, 1) and the matching
// Gauss-Legendre weights.
// MAIN DESCRIPTION:
//   - Root i starts from cos(π(i+0.75)/(n+0.5)) and is refined by
//     Newton-Raphson x ← x - P_n(x)/P_n'(x).
//
// Behavior highlights:
//   - By default every root receives exactly DefaultNewtonIterations steps;
//     WithNewtonIterations changes the budget, WithNewtonTolerance adds an
//     early exit once |step| <= tol.
//   - Weights are w_i = 2 / ((1 - x_i²) P_n'(x_i)²).
//   - Nodes are returned in descending order (the order of the guesses).
//
// Errors:
//   - ErrInvalidOrder when n < 1 or n > MaxOrder.
//
// Complexity:
//   - Time O(n² · iterations), Space O(n).
func LegendreNodes(n int, opts ...Option) (nodes, weights []float64, err error) {
	if err = validateOrder(n); err != nil {
		return nil, nil, integrateErrorf(opNodes, err)
	}
	o := buildOptions(opts)

	return legendreNodes(n, o)
}

func legendreNodes(n int, o Options) (nodes, weights []float64, err error) {
	l := newLegendre(n)
	nodes = make([]float64, n)
	weights = make([]float64, n)
	var (
		x, step float64
		k       int
	)
	for i := 0; i < n; i++ {
		x = math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for k = 0; k < o.NewtonIterations; k++ {
			step = l.p(x) / l.dp(x)
			x -= step
			if o.NewtonTolerance > 0 && math.Abs(step) <= o.NewtonTolerance {
				break
			}
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, nil, integrateErrorf(opNodes, fmt.Errorf("root %d of P_%d diverged: %w", i, n, ErrInvalidOrder))
		}
		d := l.dp(x)
		nodes[i] = x
		weights[i] = 2 / ((1 - x*x) * d * d)
	}

	return nodes, weights, nil
}
