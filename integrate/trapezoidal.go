// SPDX-License-Identifier: MIT
// Package integrate - trapezoidal force and moment over sampled data.
//
// Both rules treat the samples as a polyline, so each segment is integrated
// exactly. The per-segment kernels below are shared with stretch
// decomposition, so a stretch over the whole path reproduces
// TrapezoidalForce/TrapezoidalMoment bit for bit.

package integrate

import "fmt"

// segmentForce is ∫ f dx over one linear segment.
func segmentForce(x0, x1, f0, f1 float64) float64 {
	return (f0 + f1) * (x1 - x0) / 2
}

// segmentMoment is ∫ f·x dx over one linear segment, x measured from the
// reference point by the caller.
func segmentMoment(x0, x1, f0, f1 float64) float64 {
	addend1 := f0 * (x1 + x0)
	addend2 := (f1 - f0) * (2*x1 + x0) / 3

	return (addend1 + addend2) * (x1 - x0) / 2
}

// TrapezoidalForce integrates f dx with the trapezoidal rule:
// Σ (f[i-1]+f[i])(x[i]-x[i-1])/2.
//
// Errors: ErrLengthMismatch.
//
// Complexity: O(n).
func TrapezoidalForce(x, f []float64) (float64, error) {
	if len(x) != len(f) {
		return 0, integrateErrorf(opForce, fmt.Errorf("len(x)=%d, len(f)=%d: %w", len(x), len(f), ErrLengthMismatch))
	}
	var sum float64
	for i := 1; i < len(f); i++ {
		sum += segmentForce(x[i-1], x[i], f[i-1], f[i])
	}

	return sum, nil
}

// TrapezoidalMoment integrates f·(x - xref) dx over the polyline.
// Inputs are never modified; the shift by xref is applied per sample.
//
// Errors: ErrLengthMismatch.
//
// Complexity: O(n).
func TrapezoidalMoment(x, f []float64, xref float64) (float64, error) {
	if len(x) != len(f) {
		return 0, integrateErrorf(opMoment, fmt.Errorf("len(x)=%d, len(f)=%d: %w", len(x), len(f), ErrLengthMismatch))
	}
	var sum float64
	for i := 1; i < len(f); i++ {
		sum += segmentMoment(x[i-1]-xref, x[i]-xref, f[i-1], f[i])
	}

	return sum, nil
}
