// SPDX-License-Identifier: MIT
// Package integrate - Gauss-Legendre quadrature on an interval and by
// intervals.

package integrate

// Func is a real integrand.
type Func func(x float64) float64

// GaussLegendre approximates ∫_a^b f(x) dx with an n-point rule.
// Implementation:
//   - Stage 1: validate f and n.
//   - Stage 2: nodes/weights from LegendreNodes (recomputed on every call).
//   - Stage 3: (b-a)/2 · Σ w_i f((b-a)/2 · x_i + (a+b)/2).
//
// Behavior highlights:
//   - Exact for polynomials of degree <= 2n-1 up to rounding, for every
//     n in [1, MaxOrder].
//   - b < a yields the negated integral; a == b yields 0.
//   - No error control: discontinuous integrands converge slowly, split
//     them with GaussLegendreByIntervals.
//
// Errors:
//   - ErrNilFunction, ErrInvalidOrder.
//
// Complexity:
//   - Time O(n² · iterations + n evaluations of f), Space O(n).
func GaussLegendre(f Func, a, b float64, n int, opts ...Option) (float64, error) {
	if f == nil {
		return 0, integrateErrorf(opGauss, ErrNilFunction)
	}
	if err := validateOrder(n); err != nil {
		return 0, integrateErrorf(opGauss, err)
	}
	nodes, weights, err := legendreNodes(n, buildOptions(opts))
	if err != nil {
		return 0, integrateErrorf(opGauss, err)
	}

	return gaussSum(f, a, b, nodes, weights), nil
}

func gaussSum(f Func, a, b float64, nodes, weights []float64) float64 {
	half := (b - a) / 2
	mid := (a + b) / 2
	var sum float64
	for i, w := range weights {
		sum += w * f(half*nodes[i]+mid)
	}

	return half * sum
}

// GaussLegendreByIntervals sums GaussLegendre over consecutive breakpoint
// pairs, so discontinuities placed at breakpoints are integrated exactly.
// ok is false (and the sum 0) when fewer than two breakpoints are given.
//
// Errors: those of GaussLegendre.
func GaussLegendreByIntervals(f Func, breakpoints []float64, n int, opts ...Option) (sum float64, ok bool, err error) {
	if f == nil {
		return 0, false, integrateErrorf(opIntervals, ErrNilFunction)
	}
	if err = validateOrder(n); err != nil {
		return 0, false, integrateErrorf(opIntervals, err)
	}
	if len(breakpoints) < 2 {
		return 0, false, nil
	}
	nodes, weights, err := legendreNodes(n, buildOptions(opts))
	if err != nil {
		return 0, false, integrateErrorf(opIntervals, err)
	}
	for i := 1; i < len(breakpoints); i++ {
		sum += gaussSum(f, breakpoints[i-1], breakpoints[i], nodes, weights)
	}

	return sum, true, nil
}

// Polynomial returns the integrand Σ coeffs[k] x^k (lowest power first),
// evaluated with Horner's scheme.
func Polynomial(coeffs ...float64) Func {
	c := append([]float64(nil), coeffs...)
	return func(x float64) float64 {
		var y float64
		for k := len(c) - 1; k >= 0; k-- {
			y = y*x + c[k]
		}
		return y
	}
}
