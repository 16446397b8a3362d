// SPDX-License-Identifier: MIT
package mathx

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// DefaultEpsilon is the conventional tolerance for AreEqual.
const DefaultEpsilon = 1e-8

// DefaultDecimals is the conventional precision for Round and RoundToFixed.
const DefaultDecimals = 2

var (
	// ErrLengthMismatch indicates xs and ys of different lengths.
	ErrLengthMismatch = errors.New("mathx: xs and ys must have the same length")

	// ErrTooFewPoints indicates fewer than two interpolation knots.
	ErrTooFewPoints = errors.New("mathx: at least two points are required")
)

// AreEqual reports |a-b| < eps.
func AreEqual(a, b, eps float64) bool { return math.Abs(a-b) < eps }

// Round rounds v to the given number of decimals, halves toward +Inf.
//
//	Round(8.1393, 2) == 8.14
//	Round(-2.5, 0)   == -2
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Floor(v*pow+0.5) / pow
}

// RoundToFixed is Round rendered with exactly `decimals` digits after the
// point: RoundToFixed(8, 2) == "8.00".
func RoundToFixed(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	return strconv.FormatFloat(Round(v, decimals), 'f', decimals, 64)
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// Sum adds the values, skipping NaN entries.
func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		if !math.IsNaN(v) {
			s += v
		}
	}

	return s
}

// PiecewiseLinearInterpolation evaluates the polyline through (xs[i], ys[i])
// at x. xs must be sorted ascending.
//
// Behavior highlights:
//   - The left knot is the last xs[i] strictly below x; when none exists the
//     first segment is used, when it is the last knot the final segment is
//     used. Values outside [xs[0], xs[n-1]] are therefore extrapolated along
//     the nearest end segment.
//   - A knot hit exactly is reproduced exactly.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints.
//
// Complexity: O(n).
func PiecewiseLinearInterpolation(xs, ys []float64, x float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("PiecewiseLinearInterpolation: len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("PiecewiseLinearInterpolation: %w", ErrTooFewPoints)
	}

	i0 := 0
	for i, xi := range xs {
		if xi < x {
			i0 = i
		}
	}
	if i0 == len(xs)-1 {
		i0--
	}
	x0, y0 := xs[i0], ys[i0]
	x1, y1 := xs[i0+1], ys[i0+1]

	return y0 + (y1-y0)/(x1-x0)*(x-x0), nil
}

// Factorial returns n! as a float64; n <= 1 yields 1. Overflows to +Inf
// beyond n = 170.
func Factorial(n int) float64 {
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}

	return f
}
