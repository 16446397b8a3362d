// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across linalg.
// Kernels return these sentinels (optionally wrapped with an operation tag via
// linalgErrorf) and tests check them via errors.Is. No kernel panics on
// user-triggered conditions.

package linalg

import (
	"errors"
	"fmt"
)

// ERROR HIERARCHY
// ---------------
// ErrDimension is the root of every size/shape/finiteness violation. The
// specific sentinels below wrap it, so errors.Is(err, ErrDimension) holds for
// any of them while errors.Is(err, ErrNonSquare) still narrows the cause.
//
// ErrSingular is independent: the input was well-formed but not invertible.

var (
	// ErrDimension is the umbrella for all dimension errors.
	ErrDimension = errors.New("linalg: dimension error")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. Add of
	// different shapes, Mul where a.Cols != b.Rows, Transform where
	// m.Cols != v.Dim.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrDimension)

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimension)

	// ErrNaNInf signals a NaN or ±Inf entry at construction.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrDimension)

	// ErrRaggedRows signals rows of unequal length at construction.
	ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrDimension)

	// ErrInvalidDimensions indicates a requested shape with r<=0 or c<=0.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrDimension)

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNilOperand indicates that a nil *Matrix or *Vector was passed.
	ErrNilOperand = errors.New("linalg: nil operand")

	// ErrSingular is returned by Inverse/Solve when Gauss-Jordan cannot find
	// a non-zero pivot for some column.
	ErrSingular = errors.New("linalg: singular matrix")
)

// linalgErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
