// SPDX-License-Identifier: MIT

// Package integrate implements deterministic numerical integration over
// sampled data and analytic integrands, plus a Monte Carlo estimator for
// areas and volumes.
//
// The integrate package provides:
//
//   - TrapezoidalForce and TrapezoidalMoment: ∫ f dx and ∫ f·(x-xref) dx
//     over a polyline.
//   - ResultantStretches: splits a distribution (for instance the stress
//     across a beam section) into constant-sign stretches, each with its
//     resultant and centroid.
//   - GaussLegendre and GaussLegendreByIntervals: n-point quadrature with
//     nodes found by Newton-Raphson on P_n.
//   - MonteCarlo: area/volume of a union of geometry.Shape values.
//
// Options:
//
//	– WithNewtonIterations, WithNewtonTolerance   (quadrature)
//	– WithPoints, WithIterations, WithRNG, WithSeed, WithLogger (Monte Carlo)
//
// Errors (sentinel):
//
//	– ErrLengthMismatch, ErrPathTooShort, ErrInvalidOrder, ErrNilFunction,
//	  ErrNoShapes, ErrNilShape.
//
// Example usage:
//
//	v, err := integrate.GaussLegendre(func(x float64) float64 { return x * x }, 0, 1, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.6f\n", v) // 0.333333
package integrate
