// SPDX-License-Identifier: MIT
// Package regression: sentinel error set.

package regression

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates x and y of different lengths.
	ErrLengthMismatch = errors.New("regression: the length of the arrays x and y should be the same")

	// ErrInvalidOrder indicates a negative polynomial order.
	ErrInvalidOrder = errors.New("regression: polynomial order must be >= 0")

	// ErrDomain indicates a sample outside the domain of a linearizing
	// logarithm (x <= 0 for Logarithmic and Power, y <= 0 for Exponential
	// and Power).
	ErrDomain = errors.New("regression: sample outside the model domain")

	// ErrTooFewPoints indicates fewer samples than coefficients for the QR
	// solver, which requires an overdetermined or square system.
	ErrTooFewPoints = errors.New("regression: fewer samples than coefficients")

	// ErrDegenerateFit indicates a closed-form fit whose denominator
	// vanished (all x identical) and produced non-finite coefficients.
	ErrDegenerateFit = errors.New("regression: degenerate fit")
)

// Operation tags for error wrapping.
const (
	opPolynomial   = "Polynomial"
	opLogarithmic  = "Logarithmic"
	opExponential  = "Exponential"
	opPower        = "Power"
	opLeastSquares = "LeastSquares"
)

func regressionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
