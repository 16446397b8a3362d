// SPDX-License-Identifier: MIT
// Package regression - closed-form two-parameter fits on linearized data.

package regression

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/mathx"
)

// Logarithmic fits y = a + b·ln x.
//
//	b = (n·Σy ln x - Σy·Σln x) / (n·Σln²x - (Σln x)²)
//	a = (Σy - b·Σln x) / n
//
// Errors: ErrLengthMismatch; ErrDomain for x <= 0; ErrDegenerateFit when
// every ln x is equal.
func Logarithmic(x, y []float64) (*Model, error) {
	if err := checkSamples(x, y, true, false); err != nil {
		return nil, regressionErrorf(opLogarithmic, err)
	}
	lx := mapSlice(x, math.Log)
	a, b := linearize(lx, y)
	if !isFinite(a) || !isFinite(b) {
		return nil, regressionErrorf(opLogarithmic, ErrDegenerateFit)
	}

	coeffs := []float64{a, b}
	predict := func(v float64) float64 { return a + b*math.Log(v) }
	eq := Equation{
		WithParameters:   "y = a0 + a1 * log(x)",
		WithCoefficients: "y = " + formatNumber(a) + signedTerm(b, " * log(x)"),
	}

	return newModel(KindLogarithmic, coeffs, x, y, predict, eq), nil
}

// Exponential fits y = a·e^(b·x) by regressing ln y on x.
//
//	ln a = (Σln y·Σx² - Σx·Σx ln y) / (n·Σx² - (Σx)²)
//	b    = (n·Σx ln y - Σx·Σln y) / (n·Σx² - (Σx)²)
//
// Errors: ErrLengthMismatch; ErrDomain for y <= 0; ErrDegenerateFit when
// every x is equal.
func Exponential(x, y []float64) (*Model, error) {
	if err := checkSamples(x, y, false, true); err != nil {
		return nil, regressionErrorf(opExponential, err)
	}
	ly := mapSlice(y, math.Log)
	n := float64(len(x))
	sx := mathx.Sum(x)
	sx2 := mathx.Sum(mapSlice(x, func(v float64) float64 { return v * v }))
	sly := mathx.Sum(ly)
	sxly := mathx.Sum(zipSlice(x, ly, func(u, v float64) float64 { return u * v }))
	denom := n*sx2 - sx*sx
	lnA := (sly*sx2 - sx*sxly) / denom
	b := (n*sxly - sx*sly) / denom
	a := math.Exp(lnA)
	if !isFinite(a) || !isFinite(b) {
		return nil, regressionErrorf(opExponential, ErrDegenerateFit)
	}

	coeffs := []float64{a, b}
	predict := func(v float64) float64 { return a * math.Exp(b*v) }
	eq := Equation{
		WithParameters:   "y = a0 * exp(a1 * x)",
		WithCoefficients: fmt.Sprintf("y = %s * exp(%s * x)", formatNumber(a), formatNumber(b)),
	}

	return newModel(KindExponential, coeffs, x, y, predict, eq), nil
}

// Power fits y = a·x^b by regressing ln y on ln x.
//
// Errors: ErrLengthMismatch; ErrDomain for x <= 0 or y <= 0;
// ErrDegenerateFit when every x is equal.
func Power(x, y []float64) (*Model, error) {
	if err := checkSamples(x, y, true, true); err != nil {
		return nil, regressionErrorf(opPower, err)
	}
	lnA, b := linearize(mapSlice(x, math.Log), mapSlice(y, math.Log))
	a := math.Exp(lnA)
	if !isFinite(a) || !isFinite(b) {
		return nil, regressionErrorf(opPower, ErrDegenerateFit)
	}

	coeffs := []float64{a, b}
	predict := func(v float64) float64 { return a * math.Pow(v, b) }
	eq := Equation{
		WithParameters:   "y = a * x^(b)",
		WithCoefficients: fmt.Sprintf("y = %s * x^(%s)", formatNumber(a), formatNumber(b)),
	}

	return newModel(KindPower, coeffs, x, y, predict, eq), nil
}

// linearize returns the intercept and slope of the least-squares line
// v ≈ a + b·u.
func linearize(u, v []float64) (a, b float64) {
	n := float64(len(u))
	su := mathx.Sum(u)
	su2 := mathx.Sum(mapSlice(u, func(t float64) float64 { return t * t }))
	sv := mathx.Sum(v)
	suv := mathx.Sum(zipSlice(u, v, func(s, t float64) float64 { return s * t }))
	b = (n*suv - sv*su) / (n*su2 - su*su)
	a = (sv - b*su) / n

	return a, b
}

func checkSamples(x, y []float64, positiveX, positiveY bool) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	for i := range x {
		if positiveX && !(x[i] > 0) {
			return fmt.Errorf("x[%d]=%g: %w", i, x[i], ErrDomain)
		}
		if positiveY && !(y[i] > 0) {
			return fmt.Errorf("y[%d]=%g: %w", i, y[i], ErrDomain)
		}
	}

	return nil
}

func mapSlice(in []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}

	return out
}

func zipSlice(a, b []float64, fn func(float64, float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}

	return out
}
