// SPDX-License-Identifier: MIT
// Package regression - model dispatch over point samples.

package regression

// LeastSquares fits the model family kind to data.
//
// Behavior highlights:
//   - Points with a non-finite coordinate are dropped (CleanPoints).
//   - Fewer than two remaining points ⇒ (nil, nil): no model is possible,
//     which is not an error.
//   - An unrecognized kind falls back to DefaultKind.
//   - KindPolynomial uses WithOrder (default DefaultPolynomialOrder); the
//     fixed-order kinds ignore it. WithSolver applies to every polynomial
//     kind.
//
// Errors: those of Polynomial, Logarithmic, Exponential and Power.
func LeastSquares(kind Kind, data []Point, opts ...Option) (*Model, error) {
	clean := CleanPoints(data)
	if len(clean) < 2 {
		return nil, nil
	}
	if !kind.Valid() {
		kind = DefaultKind
	}
	x, y := Split(clean)
	o := buildOptions(opts)

	var (
		m   *Model
		err error
	)
	switch kind {
	case KindLogarithmic:
		m, err = Logarithmic(x, y)
	case KindExponential:
		m, err = Exponential(x, y)
	case KindPower:
		m, err = Power(x, y)
	default:
		order, fixed := kind.polynomialOrder()
		if !fixed {
			order = o.Order
		}
		m, err = fitPolynomial(kind, x, y, order, o)
	}
	if err != nil {
		return nil, regressionErrorf(opLeastSquares, err)
	}

	return m, nil
}
