// SPDX-License-Identifier: MIT
// Package integrate: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag via
// integrateErrorf; callers match with errors.Is.

package integrate

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates sample arrays of different lengths.
	ErrLengthMismatch = errors.New("integrate: the path and values arrays must have the same length")

	// ErrPathTooShort indicates a stretch decomposition over fewer than two points.
	ErrPathTooShort = errors.New("integrate: the path should have at least two points")

	// ErrInvalidOrder indicates a quadrature order outside [1, MaxOrder].
	ErrInvalidOrder = errors.New("integrate: invalid quadrature order")

	// ErrNilFunction indicates a nil integrand.
	ErrNilFunction = errors.New("integrate: nil integrand")

	// ErrNoShapes indicates a Monte Carlo estimate over an empty shape set.
	ErrNoShapes = errors.New("integrate: no shapes")

	// ErrNilShape indicates a nil entry in the shape set.
	ErrNilShape = errors.New("integrate: nil shape")
)

// Operation tags for error wrapping.
const (
	opForce      = "TrapezoidalForce"
	opMoment     = "TrapezoidalMoment"
	opStretches  = "ResultantStretches"
	opNodes      = "LegendreNodes"
	opGauss      = "GaussLegendre"
	opIntervals  = "GaussLegendreByIntervals"
	opMonteCarlo = "MonteCarlo"
)

func integrateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
