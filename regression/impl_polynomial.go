// SPDX-License-Identifier: MIT
// Package regression - polynomial least squares.

package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/linalg"
)

// Polynomial fits y ≈ c[0]·x^k + c[1]·x^(k-1) + … + c[k].
// Implementation:
//   - Stage 1: build the design matrix A (n×(k+1)), row i = [x_i^k … x_i^0].
//   - Stage 2 (SolverNormalEquations): c = (AᵗA)⁻¹ · (Aᵗy), inverse by
//     linalg.Inverse.
//   - Stage 2 (SolverQR): c = argmin‖Ac - y‖ via gonum mat.QR.
//   - Stage 3: metrics on the same samples; equation strings.
//
// Behavior highlights:
//   - n >= k+1 is a precondition of the normal equations and is not
//     checked; an underdetermined system surfaces as linalg.ErrSingular or
//     as coefficients with no meaning. SolverQR checks it (ErrTooFewPoints).
//   - Predict uses Horner's scheme.
//
// Errors:
//   - ErrLengthMismatch, ErrInvalidOrder, ErrTooFewPoints.
//   - linalg.ErrSingular, linalg.ErrDimension (non-finite samples or powers).
//
// Complexity:
//   - Time O(n·k² + k³), Space O(n·k).
func Polynomial(x, y []float64, order int, opts ...Option) (*Model, error) {
	return fitPolynomial(KindPolynomial, x, y, order, buildOptions(opts))
}

func fitPolynomial(kind Kind, x, y []float64, order int, o Options) (*Model, error) {
	if len(x) != len(y) {
		return nil, regressionErrorf(opPolynomial, ErrLengthMismatch)
	}
	if order < 0 {
		return nil, regressionErrorf(opPolynomial, fmt.Errorf("order=%d: %w", order, ErrInvalidOrder))
	}

	A, err := designMatrix(x, order)
	if err != nil {
		return nil, regressionErrorf(opPolynomial, err)
	}

	var coeffs []float64
	switch o.Solver {
	case SolverQR:
		coeffs, err = solveQR(A, y)
	default:
		coeffs, err = solveNormal(A, y)
	}
	if err != nil {
		return nil, regressionErrorf(opPolynomial, err)
	}

	return newPolynomialModel(kind, coeffs, x, y), nil
}

func newPolynomialModel(kind Kind, coeffs, x, y []float64) *Model {
	c := append([]float64(nil), coeffs...)
	predict := func(v float64) float64 {
		var s float64
		for _, ci := range c {
			s = s*v + ci
		}
		return s
	}

	return newModel(kind, c, x, y, predict, polynomialEquation(c))
}

func designMatrix(x []float64, order int) (*linalg.Matrix, error) {
	rows := make([][]float64, len(x))
	var p float64
	for i, xi := range x {
		row := make([]float64, order+1)
		p = 1
		for j := order; j >= 0; j-- {
			row[j] = p
			p *= xi
		}
		rows[i] = row
	}

	return linalg.NewMatrix(rows)
}

func solveNormal(A *linalg.Matrix, y []float64) ([]float64, error) {
	At := A.Transpose()
	AtA, err := At.Mul(A)
	if err != nil {
		return nil, err
	}
	inv, err := AtA.Inverse()
	if err != nil {
		return nil, err
	}
	yv, err := linalg.NewVector(y...)
	if err != nil {
		return nil, err
	}
	Aty, err := yv.Transform(At)
	if err != nil {
		return nil, err
	}
	c, err := Aty.Transform(inv)
	if err != nil {
		return nil, err
	}

	return c.Components(), nil
}

func solveQR(A *linalg.Matrix, y []float64) ([]float64, error) {
	rows, cols := A.Shape()
	if rows < cols {
		return nil, fmt.Errorf("%d samples for %d coefficients: %w", rows, cols, ErrTooFewPoints)
	}
	var qr mat.QR
	qr.Factorize(A.Gonum())

	var c mat.Dense
	if err := qr.SolveTo(&c, false, mat.NewVecDense(len(y), append([]float64(nil), y...))); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("condition %g: %w", float64(cond), linalg.ErrSingular)
		}
		return nil, err
	}

	out := make([]float64, cols)
	for j := range out {
		out[j] = c.At(j, 0)
	}

	return out, nil
}
